package faculty

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var DefaultSeed = []Entry{
	{Name: "Dr. Ramesh Kumar", Cabin: "C-101", Department: "Computer Science"},
	{Name: "Dr. Priya Sharma", Cabin: "C-102", Department: "Computer Science"},
	{Name: "Dr. Suresh Reddy", Cabin: "E-201", Department: "Electronics"},
	{Name: "Dr. Lakshmi Devi", Cabin: "E-202", Department: "Electronics"},
	{Name: "Dr. Venkat Rao", Cabin: "M-301", Department: "Mechanical"},
	{Name: "Dr. Anjali Gupta", Cabin: "M-302", Department: "Mechanical"},
	{Name: "Dr. Krishna Murthy", Cabin: "CV-101", Department: "Civil Engineering"},
	{Name: "Dr. Srinivas Rao", Cabin: "CV-102", Department: "Civil Engineering"},
	{Name: "Dr. Padma Priya", Cabin: "IT-201", Department: "Information Technology"},
	{Name: "Dr. Ravi Teja", Cabin: "IT-202", Department: "Information Technology"},
	{Name: "Dr. Swathi Reddy", Cabin: "MBA-101", Department: "Business Administration"},
	{Name: "Dr. Harish Chandra", Cabin: "MBA-102", Department: "Business Administration"},
}

type seedFile struct {
	Faculty []Entry `yaml:"faculty"`
}

// LoadSeedFile reads seed entries from a YAML document of the form
//
//	faculty:
//	  - name: Dr. Ramesh Kumar
//	    cabin: C-101
//	    department: Computer Science
func LoadSeedFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]Entry, error) {
	f := seedFile{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, e := range f.Faculty {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("parse seed: entry %d has no name", i)
		}
	}
	if f.Faculty == nil {
		return []Entry{}, nil
	}
	return f.Faculty, nil
}
