// ABOUTME: Tests for the profile existence checker
// ABOUTME: Drives every outcome kind through a fake conan executor
package check_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/conanup/conanup/internal/check"
	"github.com/conanup/conanup/internal/conan"
	"github.com/conanup/conanup/internal/conan/conantest"
)

func TestCheck(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Check Suite")
}

var listArgs = []string{"profile", "list", "--format", "json"}

var _ = Describe("Checker", func() {
	var (
		executor *conantest.Executor
		checker  *check.Checker
	)

	BeforeEach(func() {
		executor = conantest.NewExecutor()
		checker = check.New(conan.NewClient(executor, "conan"), check.Options{})
	})

	It("checks my-profile by default", func() {
		Expect(checker.Profile()).To(Equal("my-profile"))
	})

	Context("when the profile is installed", func() {
		BeforeEach(func() {
			executor.On(conantest.Response{Stdout: `["default", "my-profile", "ci"]`}, listArgs...)
		})

		It("succeeds", func() {
			result, err := checker.Check(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Profile).To(Equal("my-profile"))
			Expect(result.Installed).To(Equal([]string{"default", "my-profile", "ci"}))
			Expect(check.Classify(err)).To(Equal(check.KindFound))
		})

		It("returns the same outcome when run twice", func() {
			first, err := checker.Check(context.Background())
			Expect(err).NotTo(HaveOccurred())
			second, err := checker.Check(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
			Expect(executor.Calls()).To(HaveLen(2))
		})
	})

	Context("when the profile is absent", func() {
		BeforeEach(func() {
			executor.On(conantest.Response{Stdout: `["default", "ci"]`}, listArgs...)
		})

		It("returns a VerificationFailure", func() {
			_, err := checker.Check(context.Background())

			var failure *check.VerificationFailure
			Expect(errors.As(err, &failure)).To(BeTrue())
			Expect(failure.Profile).To(Equal("my-profile"))
			Expect(failure.Installed).To(ConsistOf("default", "ci"))
			Expect(err.Error()).To(ContainSubstring(`"my-profile" is not installed`))
			Expect(check.Classify(err)).To(Equal(check.KindVerification))
		})

		It("returns the same failure when run twice", func() {
			_, first := checker.Check(context.Background())
			_, second := checker.Check(context.Background())
			Expect(check.Classify(first)).To(Equal(check.Classify(second)))
			Expect(second).To(Equal(first))
		})
	})

	Context("when no profiles are installed", func() {
		It("mentions that none are installed", func() {
			executor.On(conantest.Response{Stdout: `[]`}, listArgs...)

			_, err := checker.Check(context.Background())
			Expect(err).To(MatchError(ContainSubstring("installed profiles: none")))
		})
	})

	Context("when the output is malformed", func() {
		It("returns a ParseError", func() {
			executor.On(conantest.Response{Stdout: "not json"}, listArgs...)

			_, err := checker.Check(context.Background())
			Expect(check.Classify(err)).To(Equal(check.KindParse))
		})
	})

	Context("when the tool exits with status 1 and no output", func() {
		It("returns an ExecutionError", func() {
			executor.On(conantest.Response{ExitCode: 1}, listArgs...)

			_, err := checker.Check(context.Background())

			var execErr *conan.ExecutionError
			Expect(errors.As(err, &execErr)).To(BeTrue())
			Expect(execErr.ExitCode).To(Equal(1))
			Expect(check.Classify(err)).To(Equal(check.KindExecution))
		})

		It("does not parse stdout that would otherwise pass", func() {
			executor.On(conantest.Response{ExitCode: 1, Stdout: `["my-profile"]`}, listArgs...)

			_, err := checker.Check(context.Background())
			Expect(check.Classify(err)).To(Equal(check.KindExecution))
		})
	})

	Context("when the tool is missing", func() {
		It("returns an EnvironmentError", func() {
			executor.On(conantest.Response{
				Err: &conan.EnvironmentError{Binary: "conan", Err: errors.New("executable file not found in $PATH")},
			}, listArgs...)

			_, err := checker.Check(context.Background())
			Expect(check.Classify(err)).To(Equal(check.KindEnvironment))
		})
	})

	Context("when the tool times out", func() {
		It("returns a TimeoutError", func() {
			executor.On(conantest.Response{
				Err: &conan.TimeoutError{Command: "conan profile list --format json"},
			}, listArgs...)

			_, err := checker.Check(context.Background())
			Expect(check.Classify(err)).To(Equal(check.KindTimeout))
		})
	})

	Context("with a custom profile", func() {
		It("looks for that profile instead", func() {
			executor.On(conantest.Response{Stdout: `["default", "linux_gcc"]`}, listArgs...)
			checker = check.New(conan.NewClient(executor, "conan"), check.Options{
				Profile: "linux_gcc",
				Timeout: time.Second,
			})

			result, err := checker.Check(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Profile).To(Equal("linux_gcc"))
		})
	})

	Context("when the caller's context is already cancelled", func() {
		It("does not report success", func() {
			executor.On(conantest.Response{Stdout: `["my-profile"]`}, listArgs...)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := checker.Check(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})

var _ = DescribeTable("Classify",
	func(err error, want check.Kind) {
		Expect(check.Classify(err)).To(Equal(want))
	},
	Entry("nil", nil, check.KindFound),
	Entry("wrapped verification failure", fmt.Errorf("check: %w", &check.VerificationFailure{Profile: "p"}), check.KindVerification),
	Entry("wrapped parse error", fmt.Errorf("check: %w", &conan.ParseError{Err: errors.New("bad")}), check.KindParse),
	Entry("deadline", context.DeadlineExceeded, check.KindTimeout),
	Entry("anything else", errors.New("boom"), check.KindUnknown),
)
