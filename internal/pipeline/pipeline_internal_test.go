package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/retroenv/retrogolib/log"

	"github.com/apparentlymart/rvdecodegen/internal/config"
	"github.com/apparentlymart/rvdecodegen/internal/decodegen"
	"github.com/apparentlymart/rvdecodegen/internal/encoding"
	"github.com/apparentlymart/rvdecodegen/internal/expand"
)

func writeFile(path, content string) {
	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

var _ = Describe("Generate", func() {
	var (
		mockCtrl *gomock.Controller
		expander *MockExpander
		logger   *log.Logger
		dir      string
		opts     Options
		report   *bytes.Buffer
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		expander = NewMockExpander(mockCtrl)
		logger = config.CreateLogger(false, true)

		dir = GinkgoT().TempDir()
		report = &bytes.Buffer{}
		opts = Options{
			TableDir: filepath.Join(dir, "opcodes"),
			Output:   filepath.Join(dir, "decode.c"),
			Report:   report,
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should emit one opcode per file in walk order", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_b"), "second rd rs1 rs2 6..0=0x33\n")
		writeFile(filepath.Join(opts.TableDir, "rv_a"), "first rd rs1 imm12 6..0=0x13\n")
		writeFile(filepath.Join(opts.TableDir, "notes.txt"), "ignored line\n")

		expander.EXPECT().
			Expand(gomock.Any()).
			DoAndReturn(func(p decodegen.Placeholders) ([]byte, error) {
				Expect(p.Opcodes).To(Equal("FIRST, SECOND"))
				Expect(p.Names).To(Equal(`"FIRST", "SECOND"`))
				Expect(p.Decode).To(ContainSubstring("Opcode: FIRST"))
				return []byte(p.Opcodes + "\n"), nil
			})

		Expect(Generate(logger, opts, expander)).To(Succeed())

		out, err := os.ReadFile(opts.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal("FIRST, SECOND\n"))
	})

	It("should generate the addi case end to end", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "addi rd rs1 imm12 6..0=0b0010011\n")

		expander.EXPECT().
			Expand(gomock.Any()).
			DoAndReturn(func(p decodegen.Placeholders) ([]byte, error) {
				Expect(p.Opcodes).To(Equal("ADDI"))
				Expect(p.Decode).To(Equal("if word&0x0000007f == 0x00000013 {\n" +
					"\treturn Inst{Opcode: ADDI, Rd: bits(word, 11, 7), Rs1: bits(word, 19, 15), Imm: immI(word)}, true\n" +
					"}"))
				return []byte("ok"), nil
			})

		Expect(Generate(logger, opts, expander)).To(Succeed())
	})

	It("should not call the expander or write when a table is invalid", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "bogus rd foo 6..0=0x13\n")
		writeFile(opts.Output, "previous")

		err := Generate(logger, opts, expander)

		var unknownErr *decodegen.UnknownArgumentError
		Expect(errors.As(err, &unknownErr)).To(BeTrue())
		out, _ := os.ReadFile(opts.Output)
		Expect(string(out)).To(Equal("previous"))
	})

	It("should not write when a field overflows", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "bad rd 1..0=0b100\n")

		err := Generate(logger, opts, expander)

		var encErr *encoding.EncodingError
		Expect(errors.As(err, &encErr)).To(BeTrue())
		Expect(opts.Output).NotTo(BeAnExistingFile())
	})

	It("should not write when expansion fails", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "addi rd rs1 imm12 6..0=0x13\n")
		writeFile(opts.Output, "previous")

		expander.EXPECT().
			Expand(gomock.Any()).
			Return(nil, errors.New("boom"))

		Expect(Generate(logger, opts, expander)).To(MatchError(ContainSubstring("boom")))
		out, _ := os.ReadFile(opts.Output)
		Expect(string(out)).To(Equal("previous"))
	})

	It("should reject generated Go that does not parse", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "addi rd rs1 imm12 6..0=0x13\n")
		opts.Output = filepath.Join(dir, "decode_gen.go")

		expander.EXPECT().
			Expand(gomock.Any()).
			Return([]byte("package x\nfunc {"), nil)

		Expect(Generate(logger, opts, expander)).NotTo(Succeed())
		Expect(opts.Output).NotTo(BeAnExistingFile())
	})

	It("should write the summary and dump to the report writer", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "addi rd rs1 imm12 6..0=0x13\n")
		opts.Summary = true
		opts.Dump = true

		expander.EXPECT().Expand(gomock.Any()).Return([]byte("ok"), nil)

		Expect(Generate(logger, opts, expander)).To(Succeed())
		Expect(report.String()).To(ContainSubstring("0x0000007f"))
		Expect(report.String()).To(ContainSubstring("encoding.Encoding"))
	})

	It("should use the default prefix", func() {
		writeFile(filepath.Join(opts.TableDir, "rv_i"), "addi rd rs1 imm12 6..0=0x13\n")
		writeFile(filepath.Join(opts.TableDir, "xx_i"), "other rd 6..0=0x33\n")

		expander.EXPECT().
			Expand(gomock.Any()).
			DoAndReturn(func(p decodegen.Placeholders) ([]byte, error) {
				Expect(p.Opcodes).To(Equal("ADDI"))
				return []byte("ok"), nil
			})

		Expect(Generate(logger, opts, expander)).To(Succeed())
	})

	It("should fail for a missing template", func() {
		opts.Template = filepath.Join(dir, "missing.tmpl")
		Expect(Run(logger, opts)).NotTo(Succeed())
	})
})

var _ = Describe("lint", func() {
	It("should count overlapping and unreachable pairs", func() {
		var encs []encoding.Encoding
		for _, line := range []string{
			"fence fm pred succ rs1 14..12=0 rd 6..2=0x03 1..0=3",
			"fence.i imm12 rs1 14..12=1 rd 6..2=0x03 1..0=3",
			"pause 31..28=0 27..24=1 23..20=0 19..15=0 14..12=0 11..7=0 6..2=0x03 1..0=3",
		} {
			enc, err := encoding.ParseLine(line)
			Expect(err).NotTo(HaveOccurred())
			encs = append(encs, enc)
		}

		logger := config.CreateLogger(false, true)

		overlaps, unreachable := lint(logger, encs)
		Expect(overlaps).To(Equal(1))
		Expect(unreachable).To(Equal(1))

		overlaps, unreachable = lint(logger, encs[:2])
		Expect(overlaps).To(Equal(0))
		Expect(unreachable).To(Equal(0))
	})

	It("should not flag a reachable overlap as unreachable", func() {
		var encs []encoding.Encoding
		for _, line := range []string{
			"pause 31..28=0 27..24=1 23..20=0 19..15=0 14..12=0 11..7=0 6..2=0x03 1..0=3",
			"fence fm pred succ rs1 14..12=0 rd 6..2=0x03 1..0=3",
		} {
			enc, err := encoding.ParseLine(line)
			Expect(err).NotTo(HaveOccurred())
			encs = append(encs, enc)
		}

		overlaps, unreachable := lint(config.CreateLogger(false, true), encs)
		Expect(overlaps).To(Equal(1))
		Expect(unreachable).To(Equal(0))
	})
})

var _ expand.Expander = (*MockExpander)(nil)
