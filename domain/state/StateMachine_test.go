package state_test

import (
	"facultydesk/domain/state"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ state.StateMachineTraits = &state.StateMachine{}

var _ = Describe("StateMachine", func() {
	var (
		stateMachine *state.StateMachine
		pending      = state.State{Name: "pending", Category: state.Initial}
		approved     = state.State{Name: "approved", Category: state.Terminal}
		rejected     = state.State{Name: "rejected", Category: state.Terminal}
	)

	BeforeEach(func() {
		//           pending   approved      rejected
		// pending     -       V (approve)   V (reject)
		// approved    X       -             X
		// rejected    X       X             -
		stateMachine = state.NewStateMachine(
			[]state.State{pending, approved, rejected},
			[]state.Transition{
				{Name: "approve", From: pending, To: approved},
				{Name: "reject", From: pending, To: rejected},
			})
	})

	Describe("NewStateMachine", func() {
		It("should create new State Machine successfully", func() {
			Expect(stateMachine).NotTo(BeZero())
			Expect(stateMachine.States).Should(Equal([]state.State{pending, approved, rejected}))
			Expect(len(stateMachine.Transitions)).Should(Equal(2))
		})
	})

	Describe("AvailableTransitions", func() {
		It("should return availableTransitions as expected", func() {
			Ω(stateMachine.AvailableTransitions("pending", "")).Should(Equal([]state.Transition{
				{Name: "approve", From: pending, To: approved},
				{Name: "reject", From: pending, To: rejected},
			}))
			Ω(stateMachine.AvailableTransitions("pending", "rejected")).Should(Equal([]state.Transition{
				{Name: "reject", From: pending, To: rejected},
			}))
			Ω(stateMachine.AvailableTransitions("", "approved")).Should(Equal([]state.Transition{
				{Name: "approve", From: pending, To: approved},
			}))

			Ω(len(stateMachine.AvailableTransitions("approved", "rejected"))).Should(Equal(0))
			Ω(len(stateMachine.AvailableTransitions("approved", "approved"))).Should(Equal(0))
			Ω(len(stateMachine.AvailableTransitions("UNKNOWN", ""))).Should(Equal(0))
		})
	})

	Describe("FindState", func() {
		It("should find declared states only", func() {
			s, found := stateMachine.FindState("approved")
			Expect(found).To(BeTrue())
			Expect(s).To(Equal(approved))

			_, found = stateMachine.FindState("UNKNOWN")
			Expect(found).To(BeFalse())
		})
	})

	Describe("IsTerminal", func() {
		It("should treat states without outgoing transitions as terminal", func() {
			Expect(stateMachine.IsTerminal("pending")).To(BeFalse())
			Expect(stateMachine.IsTerminal("approved")).To(BeTrue())
			Expect(stateMachine.IsTerminal("rejected")).To(BeTrue())
		})
	})
})
