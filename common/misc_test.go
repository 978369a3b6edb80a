package common_test

import (
	"facultydesk/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Misc", func() {
	Describe("NextId", func() {
		It("should generate increasing ids from a worker with fixed machine id", func() {
			worker := common.NewIdWorker(7)
			Expect(worker).ToNot(BeNil())

			id1 := common.NextId(worker)
			id2 := common.NextId(worker)
			Expect(id1).ToNot(BeZero())
			Expect(id2 > id1).To(BeTrue())
		})
	})
})
