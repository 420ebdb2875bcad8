package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/govalues/radix"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			args []string
			want string
		}{
			// to
			{[]string{"to", "0.1", "--base", "2", "--scale", "10"}, "0.0001100110\n"},
			{[]string{"to", "0.1", "--base", "2", "--repeat"}, "0.0(0011)\n"},
			{[]string{"to", "0.1", "-b", "3", "--repeat=[,]"}, "0.[0022]\n"},
			{[]string{"to", "3.14159265358979", "--base", "8", "--scale", "10"}, "3.1103755242\n"},
			{[]string{"to", "3.14159265358979", "--base", "8", "--scale", "10", "--plain"}, "3.1103755243\n"},
			{[]string{"to", "ff.8", "--from", "16", "--base", "10", "--scale", "2"}, "255.50\n"},
			{[]string{"to", "5", "--base", "2", "--digits", "○●", "--scale", "0"}, "●○●\n"},
			{[]string{"to", "5", "--base", "2", "--scale", "4"}, "101.0000\n"},
			{[]string{"to", "12345678901234567890123", "--base", "36", "--scale", "0"}, "20dgohx2w7bek7f\n"},
			// bases
			{[]string{"bases", "255.75", "--bases", "2,8,16", "--scale", "2"}, "2\t11111111.11\n8\t377.60\n16\tff.c0\n"},
			{[]string{"bases", "0.1", "--from", "3", "--bases", "10,2", "--repeat"}, "10\t0.(3)\n2\t0.(01)\n"},
			// from
			{[]string{"from", "1.111", "--base", "2", "--scale", "3"}, "1.875\n"},
			{[]string{"from", "1.1", "-b", "3", "--scale", "5"}, "1.33333\n"},
			{[]string{"from", "zz", "--base", "36"}, "1295.00000000000000\n"},
			{[]string{"from", "0", "--base", "36"}, "0\n"},
			// sum
			{[]string{"sum", "1.5", "1.1@3", "1.5@6", "--scale", "4"}, "4.6666\n"},
			{[]string{"sum", "1.5", "1.1@3", "1.5@6", "--repeat"}, "4.(6)\n"},
			{[]string{"sum", "1.5", "1.1@3", "1.5@6", "--exact"}, "4 2/3\n"},
			{[]string{"sum", "1.5", "1.1@3", "1.5@6", "--base", "2", "--repeat"}, "100.(10)\n"},
			{[]string{"sum", "ff@16", "1", "--scale", "0"}, "256\n"},
			{[]string{"sum", "ff@16", "1", "--scale", "2"}, "256.00\n"},
		}
		for _, tt := range tests {
			t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
				got, _, err := run(t, tt.args...)
				if err != nil {
					t.Fatalf("baseconv %v failed: %v", tt.args, err)
				}
				if got != tt.want {
					t.Errorf("baseconv %v = %q, want %q", tt.args, got, tt.want)
				}
			})
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			args []string
			want error
		}{
			"invalid base":     {[]string{"to", "1.5", "--base", "37"}, radix.ErrInvalidBase},
			"invalid digit":    {[]string{"to", "2", "--from", "2", "--base", "10"}, radix.ErrInvalidNumber},
			"negative scale":   {[]string{"to", "1", "--base", "2", "--scale", "-1"}, radix.ErrInvalidScale},
			"invalid alphabet": {[]string{"to", "1", "--base", "2", "--digits", "0"}, radix.ErrInvalidAlphabet},
			"plain base":       {[]string{"to", "1", "--base", "2", "--from", "3", "--plain"}, nil},
			"plain repeat":     {[]string{"to", "1", "--base", "2", "--plain", "--repeat"}, nil},
			"repeat markers":   {[]string{"to", "1", "--base", "2", "--repeat=abc"}, nil},
			"missing base":     {[]string{"to", "1"}, nil},
			"bases":            {[]string{"bases", "1", "--bases", "2,1"}, radix.ErrInvalidBase},
			"from digit":       {[]string{"from", "g", "--base", "16"}, radix.ErrUnknownSymbol},
			"sum operand base": {[]string{"sum", "1@x"}, nil},
			"sum operand":      {[]string{"sum", "1", "2@2"}, radix.ErrInvalidNumber},
			"sum no operands":  {[]string{"sum"}, nil},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, _, err := run(t, tt.args...)
				if err == nil {
					t.Fatalf("baseconv %v did not fail", tt.args)
				}
				if tt.want != nil && !errors.Is(err, tt.want) {
					t.Errorf("baseconv %v = %v, want %v", tt.args, err, tt.want)
				}
			})
		}
	})
}

func TestVerbose(t *testing.T) {
	_, stderr, err := run(t, "to", "5", "--base", "2", "--verbose")
	if err != nil {
		t.Fatalf("baseconv to 5 --base 2 --verbose failed: %v", err)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("stderr = %q, want debug records", stderr)
	}

	_, stderr, err = run(t, "to", "5", "--base", "2")
	if err != nil {
		t.Fatalf("baseconv to 5 --base 2 failed: %v", err)
	}
	if strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("stderr = %q, want no debug records", stderr)
	}
}
