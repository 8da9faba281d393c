// ABOUTME: Acceptance tests for the cache-key command
// ABOUTME: Verifies keys built from the conan version and an explicit key or profile hash
package acceptance

import (
	"strings"

	"github.com/conanup/conanup/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("cache-key", func() {
	var env *helpers.TestEnv

	BeforeEach(func() {
		env = helpers.NewTestEnv(binaryPath)
	})

	It("prefixes the key with the conan version", func() {
		result := env.Run("cache-key", "linux-x86_64")

		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stdout).To(Equal("conan-v2.8.0-linux-x86_64\n"))
	})

	It("derives the key from host profiles", func() {
		env.FakeConan(`case "$*" in
  "--version") echo "Conan version 2.8.0" ;;
  "profile show --format json --profile:host=default") echo '{"host": {"settings": {"os": "Linux"}}}' ;;
  *) exit 2 ;;
esac`)

		result := env.Run("cache-key", "--profile", "default")

		Expect(result.ExitCode).To(Equal(0))
		Expect(strings.TrimSpace(result.Stdout)).To(MatchRegexp(`^conan-v2\.8\.0-[a-f0-9]{32}$`))
	})

	It("hashes the default host profile when no key is given", func() {
		env.FakeConan(`case "$*" in
  "--version") echo "Conan version 2.8.0" ;;
  "profile show --format json --profile:host=default") echo '{"a": "<x>&y"}' ;;
  *) exit 2 ;;
esac`)

		result := env.Run("cache-key")

		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stdout).To(Equal("conan-v2.8.0-274a2167bfa17be1cf1f6d4702251f46\n"))
	})

	It("fails when the version cannot be parsed", func() {
		env.FakeConan(`echo "Conan version unknown"`)

		result := env.Run("cache-key", "k")

		Expect(result.ExitCode).To(Equal(1))
		Expect(result.Stderr).To(ContainSubstring("parse error"))
	})
})
