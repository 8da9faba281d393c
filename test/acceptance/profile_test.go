// ABOUTME: Acceptance tests for profile subcommands
// ABOUTME: Covers list output formats, config install and default profile detection
package acceptance

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/conanup/conanup/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("profile", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	Describe("list", func() {
		It("prints installed profiles as JSON", func() {
			env.FakeProfiles("default", "my-profile", "ci")

			result := env.Run("profile", "list", "--format", "json")
			Expect(result.ExitCode).To(Equal(0))

			var profiles []string
			Expect(json.Unmarshal([]byte(result.Stdout), &profiles)).To(Succeed())
			Expect(profiles).To(Equal([]string{"default", "my-profile", "ci"}))
		})

		It("prints a section with every profile", func() {
			result := env.Run("profile", "list")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Installed profiles (2)"))
			Expect(result.Stdout).To(ContainSubstring("my-profile"))
		})

		It("suggests detection when nothing is installed", func() {
			env.FakeProfiles()

			result := env.Run("profile", "list")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("conanup profile detect"))
		})

		It("rejects unknown formats", func() {
			result := env.Run("profile", "list", "--format", "yaml")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("invalid format"))
		})
	})

	Describe("install", func() {
		It("provisions the profile that check looks for", func() {
			marker := filepath.Join(env.TempDir, "config-installed")
			env.FakeConan(fmt.Sprintf(`case "$*" in
  "config install ./ci/conan-config") touch %[1]q ;;
  "profile list --format json")
    if [ -f %[1]q ]; then echo '["default", "my-profile"]'; else echo '["default"]'; fi ;;
  *) exit 2 ;;
esac`, marker))

			Expect(env.Run("check").ExitCode).To(Equal(1))

			result := env.Run("profile", "install", "./ci/conan-config")
			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Installed profiles (2)"))

			Expect(env.Run("check").ExitCode).To(Equal(0))
		})

		It("fails with an execution error when conan rejects the source", func() {
			env.FakeConan(`echo "ERROR: Unable to deduce type config install" >&2; exit 1`)

			result := env.Run("profile", "install", "nowhere")

			Expect(result.ExitCode).To(Equal(1))
			Expect(result.Stderr).To(ContainSubstring("execution error"))
		})
	})

	Describe("detect", func() {
		It("runs conan profile detect when default is missing", func() {
			env.FakeConan(`case "$*" in
  "profile list --format json") echo '[]' ;;
  "profile detect") echo "detected" ;;
  *) exit 2 ;;
esac`)

			result := env.Run("profile", "detect")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("Detected default profile"))
		})

		It("leaves an existing default profile alone", func() {
			result := env.Run("profile", "detect")

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(ContainSubstring("already installed"))
		})
	})
})
