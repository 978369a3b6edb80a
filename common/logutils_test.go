package common_test

import (
	"bytes"
	"encoding/json"
	"facultydesk/common"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("ConfigureLogging", func() {
	AfterEach(func() {
		common.ConfigureLogging("info", "text")
		logrus.SetOutput(os.Stdout)
	})

	It("should emit json entries carrying the service field", func() {
		common.ConfigureLogging("debug", "JSON")
		Expect(logrus.GetLevel()).To(Equal(logrus.DebugLevel))

		buf := &bytes.Buffer{}
		logrus.SetOutput(buf)
		logrus.WithField("contributionId", "1").Debug("approved")

		entry := map[string]interface{}{}
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
		Expect(entry["service"]).To(Equal("facultydesk"))
		Expect(entry["contributionId"]).To(Equal("1"))
		Expect(entry["msg"]).To(Equal("approved"))
	})

	It("should fallback to info level for unknown level", func() {
		common.ConfigureLogging("verbose", "text")
		Expect(logrus.GetLevel()).To(Equal(logrus.InfoLevel))
		_, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter)
		Expect(ok).To(BeTrue())
	})
})
