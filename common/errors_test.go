package common_test

import (
	"errors"
	"facultydesk/common"
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errors", func() {
	Describe("ErrBadParam", func() {
		Describe("Error", func() {
			It("should return default message if cause is nil", func() {
				err := common.ErrBadParam{}
				Expect(err.Error()).To(Equal("common.bad_param"))
			})
			It("should invoke the Error() function of cause property if cause is not nil", func() {
				err := common.ErrBadParam{Cause: errors.New("invalid id 'abc'")}
				Expect(err.Error()).To(Equal("invalid id 'abc'"))
			})
		})

		Describe("Respond", func() {
			It("should respond bad request with the cause message", func() {
				err := common.ErrBadParam{Cause: errors.New("some cause")}
				Expect(*err.Respond()).To(Equal(common.BizErrorDetail{
					Status: http.StatusBadRequest, Code: "common.bad_param", Message: "some cause"}))

				err = common.ErrBadParam{}
				Expect(err.Respond().Message).To(Equal("common.bad_param"))
			})
		})

		It("should be unwrapped to its cause", func() {
			cause := errors.New("cause")
			var err error = &common.ErrBadParam{Cause: cause}
			Expect(errors.Is(err, cause)).To(BeTrue())
		})
	})
})
