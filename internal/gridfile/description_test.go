package gridfile_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/boltgrid/internal/gridfile"
)

var _ = Describe("Grid descriptions", func() {
	var d *gridfile.Description

	BeforeEach(func() {
		d = &gridfile.Description{
			Height:  10,
			Width:   10,
			Power:   1,
			Eta:     1,
			Sources: []gridfile.Point{{Row: 0, Col: 5}},
			Targets: []gridfile.Point{{Row: 10, Col: 5}},
		}
	})

	It("writes the line layout the simulator expects", func() {
		var buf bytes.Buffer
		Expect(gridfile.WriteDescription(&buf, d)).To(Succeed())
		Expect(buf.String()).To(Equal("10 10 1 1\n1\n0 5\n1\n10 5\n"))
	})

	It("round trips through a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "grid.txt")
		Expect(gridfile.SaveDescription(path, d)).To(Succeed())

		loaded, err := gridfile.LoadDescription(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(d))

		n, err := gridfile.HeaderFields(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(4))
	})

	It("keeps empty target lists", func() {
		d.Targets = []gridfile.Point{}
		var buf bytes.Buffer
		Expect(gridfile.WriteDescription(&buf, d)).To(Succeed())

		loaded, err := gridfile.ReadDescription(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Targets).To(BeEmpty())
	})

	DescribeTable("rejects malformed input",
		func(input string) {
			_, err := gridfile.ReadDescription(strings.NewReader(input))
			Expect(errors.Is(err, gridfile.ErrMalformed)).To(BeTrue())
		},
		Entry("short header", "10 10 1\n"),
		Entry("missing sources", "10 10 1 1\n"),
		Entry("negative count", "10 10 1 1\n-1\n"),
		Entry("bad point", "10 10 1 1\n1\n0\n"),
		Entry("truncated targets", "10 10 1 1\n1\n0 5\n2\n1 1\n"),
		Entry("source count past the data", "2 2 1 1\n4611686018427387903\n0 0\n"),
		Entry("target count past the data", "2 2 1 1\n0\n4611686018427387903\n1 1\n"),
	)
})

var _ = Describe("Points", func() {
	DescribeTable("bounds",
		func(p gridfile.Point, in bool) {
			Expect(p.In(4, 3)).To(Equal(in))
		},
		Entry("origin", gridfile.Point{Row: 0, Col: 0}, true),
		Entry("last cell", gridfile.Point{Row: 3, Col: 2}, true),
		Entry("row past edge", gridfile.Point{Row: 4, Col: 0}, false),
		Entry("col past edge", gridfile.Point{Row: 0, Col: 3}, false),
		Entry("negative", gridfile.Point{Row: -1, Col: 0}, false),
	)
})
