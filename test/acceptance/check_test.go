// ABOUTME: Acceptance tests for the check command
// ABOUTME: Verifies exit codes and the reported failure kind against a fake conan
package acceptance

import (
	"path/filepath"

	"github.com/conanup/conanup/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("check", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Context("when my-profile is installed", func() {
		It("exits 0 and reports success", func() {
			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring(`Profile "my-profile" is installed`))
			Expect(result.Stderr).To(BeEmpty())
		})

		It("gives the same result on every run", func() {
			Expect(env.Run("check").ExitCode).To(Equal(0))
			Expect(env.Run("check").ExitCode).To(Equal(0))
		})
	})

	Context("when my-profile is absent", func() {
		It("exits 1 with a verification failure", func() {
			env.FakeProfiles("default", "ci")

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("verification failure"))
			Expect(result.Stderr).To(ContainSubstring("default, ci"))
			Expect(result.Stdout).NotTo(ContainSubstring("is installed"))
		})

		It("mentions that no profiles are installed", func() {
			env.FakeProfiles()

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("installed profiles: none"))
		})
	})

	Context("when conan prints malformed output", func() {
		It("exits 1 with a parse error", func() {
			env.FakeConan(`echo "not json"`)

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("parse error"))
			Expect(result.Stderr).To(ContainSubstring("not json"))
		})
	})

	Context("when conan exits with a non-zero status", func() {
		It("exits 1 with an execution error", func() {
			env.FakeConan(`echo "ERROR: conan home is corrupt" >&2; exit 1`)

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("execution error"))
			Expect(result.Stderr).To(ContainSubstring("conan home is corrupt"))
		})

		It("does not trust a listing printed before the failure", func() {
			env.FakeConan(`echo '["my-profile"]'; exit 1`)

			result := env.Run("check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("execution error"))
		})
	})

	Context("when conan cannot be found", func() {
		It("exits 1 with an environment error", func() {
			missing := filepath.Join(env.TempDir, "missing", "conan")

			result := env.RunWithEnv([]string{"CONANUP_CONAN=" + missing}, "check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("environment error"))
			Expect(result.Stderr).To(ContainSubstring("conanup --conan"))
		})
	})

	Context("when conan hangs", func() {
		It("exits 1 with a timeout", func() {
			env.FakeConan(`exec sleep 5`)

			result := env.Run("--timeout", "200ms", "check")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("timeout"))
		})
	})

	Context("with a profile argument", func() {
		It("checks that profile instead", func() {
			env.FakeProfiles("default", "linux_gcc")

			Expect(env.Run("check", "linux_gcc").ExitCode).To(Equal(0))
			Expect(env.Run("check").ExitCode).To(Equal(1))
		})
	})

	Context("with check.profile configured", func() {
		It("checks the configured profile", func() {
			env.FakeProfiles("ci")
			helpers.WriteJSON(env.ConfigFile, map[string]interface{}{
				"check": map[string]interface{}{"profile": "ci"},
			})

			Expect(env.Run("check").ExitCode).To(Equal(0))
		})
	})

	Context("with --record", func() {
		It("appends each outcome to the history", func() {
			Expect(env.Run("check", "--record").ExitCode).To(Equal(0))
			env.FakeProfiles()
			Expect(env.Run("check", "--record").ExitCode).To(Equal(1))

			Expect(env.HistoryLines()).To(HaveLen(2))

			result := env.Run("history")
			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Recorded checks (2)"))
			Expect(result.Stdout).To(ContainSubstring("verification-failure"))
		})

		It("records nothing without the flag", func() {
			Expect(env.Run("check").ExitCode).To(Equal(0))
			Expect(env.HistoryLines()).To(BeEmpty())
		})
	})
})
