package gridfile_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGridfile(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gridfile Suite")
}
