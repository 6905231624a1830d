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

var _ = Describe("Frame sequences", func() {
	twoByTwo := func() *gridfile.FrameSet {
		return &gridfile.FrameSet{
			Height: 2,
			Width:  2,
			Frames: []gridfile.Frame{
				{{0, 0}, {0, 0}},
				{{3, 0}, {0, -1}},
			},
		}
	}

	It("writes the header, rows and one separator per frame", func() {
		var buf bytes.Buffer
		Expect(gridfile.WriteFrames(&buf, twoByTwo())).To(Succeed())
		Expect(buf.String()).To(Equal("2 2 2\n0 0\n0 0\n\n3 0\n0 -1\n\n"))
	})

	It("reads back every frame it writes", func() {
		var buf bytes.Buffer
		Expect(gridfile.WriteFrames(&buf, twoByTwo())).To(Succeed())

		fs, err := gridfile.ReadFrames(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.Frames).To(HaveLen(2))
		Expect(fs.Frames[1][0][0]).To(Equal(3))
		Expect(fs.Frames[1][1][1]).To(Equal(-1))
	})

	It("accepts trailing spaces on rows", func() {
		fs, err := gridfile.ReadFrames(strings.NewReader("1 2 1\n1 2 \n\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.Frames[0][0]).To(Equal([]int{1, 2}))
	})

	It("accepts an empty sequence", func() {
		fs, err := gridfile.ReadFrames(strings.NewReader("3 3 0\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(fs.Frames).To(BeEmpty())
	})

	DescribeTable("rejects malformed input",
		func(input string, line int) {
			_, err := gridfile.ReadFrames(strings.NewReader(input))
			Expect(errors.Is(err, gridfile.ErrMalformed)).To(BeTrue())

			var pe *gridfile.ParseError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Line).To(Equal(line))
		},
		Entry("short header", "2 2\n", 1),
		Entry("non-integer header", "2 x 1\n", 1),
		Entry("row too short", "2 2 1\n0 0\n0\n\n", 3),
		Entry("row too long", "2 2 1\n0 0 0\n0 0\n\n", 2),
		Entry("non-integer cell", "2 2 1\n0 a\n0 0\n\n", 2),
		Entry("missing separator", "1 1 1\n5\n", 3),
		Entry("non-blank separator", "1 1 2\n5\n5\n\n", 3),
		Entry("missing frame", "1 1 2\n5\n\n", 4),
		Entry("extra separator", "1 1 1\n5\n\n\n", 4),
		Entry("extra frame", "1 1 1\n5\n\n6\n\n", 4),
		Entry("frame count past the data", "2 2 4611686018427387903\n0 0\n0 0\n\n", 5),
		Entry("height past the data", "4611686018427387903 2 2\n0 0\n", 3),
	)

	It("refuses to write frames of the wrong shape", func() {
		fs := &gridfile.FrameSet{Height: 2, Width: 2, Frames: []gridfile.Frame{{{1, 1}}}}
		Expect(gridfile.WriteFrames(&bytes.Buffer{}, fs)).To(MatchError(gridfile.ErrDimensions))
	})

	It("appends only frames of the set's shape", func() {
		fs := &gridfile.FrameSet{Height: 2, Width: 3}
		Expect(fs.Append(gridfile.NewFrame(2, 3))).To(Succeed())
		Expect(fs.Append(gridfile.NewFrame(3, 2))).To(MatchError(gridfile.ErrDimensions))
		Expect(fs.Frames).To(HaveLen(1))
	})

	It("detects the format from the header", func() {
		dir := GinkgoT().TempDir()
		frames := filepath.Join(dir, "frames.txt")
		Expect(gridfile.SaveFrames(frames, twoByTwo())).To(Succeed())

		n, err := gridfile.HeaderFields(frames)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))

		loaded, err := gridfile.LoadFrames(frames)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(twoByTwo()))
	})
})
