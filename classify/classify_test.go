package classify

import "testing"

func TestParseSingleLineCases(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Instruction
	}{
		{"negate", "tEst", Instruction{Kind: Negate, Register: R0, Line: "tEst"}},
		{"multiply", "  Test", Instruction{Kind: Multiply, Register: R1, Line: "  Test"}},
		{"pop", "test,", Instruction{Kind: Pop, Register: R0, Line: "test,"}},
		{"push", "push-it", Instruction{Kind: Push, Register: R0, Line: "push-it"}},
		{"store", "somebody once", Instruction{Kind: Store, Register: R0, Line: "somebody once", Operand: 4}},
		{"goto", "sells sea shells", Instruction{Kind: Goto, Register: R0, Line: "sells sea shells"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prog := Parse(tc.line)
			if len(prog) != 1 {
				t.Fatalf("expected 1 instruction, got %d", len(prog))
			}
			got := prog[0]
			if got != tc.want {
				t.Errorf("classify(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestParseConditionalPushByRhyme(t *testing.T) {
	source := "somebody once told me\nthe world was gonna roll me"
	prog := Parse(source)
	if len(prog) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(prog))
	}

	want0 := Instruction{Kind: Store, Register: R0, Line: "somebody once told me", Operand: 6}
	if prog[0] != want0 {
		t.Errorf("line 0 = %+v, want %+v", prog[0], want0)
	}

	want1 := Instruction{
		Kind: ConditionalPush, Register: R0,
		Line: "the world was gonna roll me",
		PrevSyllables: 6, CurSyllables: 7,
	}
	if prog[1] != want1 {
		t.Errorf("line 1 = %+v, want %+v", prog[1], want1)
	}
}

func TestParseTotalOverBlankAndTrailingLines(t *testing.T) {
	prog := Parse("one\n\ntwo\n")
	if len(prog) != 4 {
		t.Fatalf("expected 4 instructions (including trailing blank), got %d: %+v", len(prog), prog)
	}
	if prog[1].Kind != Noop {
		t.Errorf("blank line classified as %s, want Noop", prog[1].Kind)
	}
	if prog[3].Kind != Noop {
		t.Errorf("trailing line classified as %s, want Noop", prog[3].Kind)
	}
}

func TestHasAlliteration(t *testing.T) {
	a := NewAnalyzer(nil)
	if !a.HasAlliteration("fish fosh") {
		t.Error("expected alliteration in 'fish fosh'")
	}
	if a.HasAlliteration("he took a new elf") {
		t.Error("unexpected alliteration in 'he took a new elf'")
	}
}

func TestApproximateSyllablesHeuristic(t *testing.T) {
	cases := map[string]int{
		"supercalifragilisticexpialidocious": 15,
		"antidisestablishmentarianism":       12,
	}
	for word, want := range cases {
		if got := approximateSyllables(word); got != want {
			t.Errorf("approximateSyllables(%q) = %d, want %d", word, got, want)
		}
	}
}

func TestCountSyllablesLovelyPoem(t *testing.T) {
	if got := CountSyllables("a lovely poem"); got != 5 {
		t.Errorf("CountSyllables(%q) = %d, want 5", "a lovely poem", got)
	}
}

func TestCountSyllablesIdempotentUnderLowercasing(t *testing.T) {
	mixed := "A Lovely POEM"
	if got, want := CountSyllables(mixed), CountSyllables("a lovely poem"); got != want {
		t.Errorf("CountSyllables(%q) = %d, want %d (lowercase form)", mixed, got, want)
	}
}
