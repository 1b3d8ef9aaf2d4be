package wavio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atmafra/poli-sub001/internal/errs"
	"github.com/atmafra/poli-sub001/internal/siglist"
)

// rawSplitSet is the original RAW reader's token separator set (space
// plus the punctuation a hand-typed complex literal might carry:
// parens, brackets, braces, the i/j imaginary suffixes in either case,
// and list separators), extended with tab, carriage return and newline.
const rawSplitSet = " ,;()ijIJ[]{}\t\r\n"

func isRawSep(r rune) bool {
	return strings.ContainsRune(rawSplitSet, r)
}

// DecodeRaw parses a RAW text stream into a siglist.List. Each token is
// one numeric field; kind selects whether pairs of tokens are folded
// into real/imaginary parts (Complex) or read one-per-sample (Real).
// The whole input is read as one token stream: line breaks do not
// delimit samples, so a Complex sample's two parts may come from
// different lines, and a trailing odd token becomes a sample with a
// zero imaginary part.
// scale fixes the resulting list's time axis, since RAW carries none.
func DecodeRaw(r io.Reader, kind siglist.Kind, scale siglist.TimeScale) (*siglist.List, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanRunes)

	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for sc.Scan() {
		ch := []rune(sc.Text())[0]
		if isRawSep(ch) {
			flush()
			continue
		}
		cur.WriteRune(ch)
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.IO, "wavio.DecodeRaw", "scanning input", err)
	}

	values := make([]float64, 0, len(tokens))
	for _, t := range tokens {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, errs.Wrap(errs.Domain, "wavio.DecodeRaw", fmt.Sprintf("malformed numeric token %q", t), err)
		}
		values = append(values, v)
	}

	list := siglist.New(kind, scale)
	switch kind {
	case siglist.Real:
		for _, v := range values {
			if err := list.Add(complex(v, 0)); err != nil {
				return nil, err
			}
		}
	case siglist.Complex:
		for i := 0; i+1 < len(values); i += 2 {
			if err := list.Add(complex(values[i], values[i+1])); err != nil {
				return nil, err
			}
		}
		if len(values)%2 == 1 {
			if err := list.Add(complex(values[len(values)-1], 0)); err != nil {
				return nil, err
			}
		}
	}
	return list, nil
}
