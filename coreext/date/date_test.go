package date

import (
	"testing"
	"time"

	"github.com/zephyrtronium/lisp"
	"github.com/zephyrtronium/lisp/testutils"
)

func TestRegister(t *testing.T) {
	testutils.CheckFunctions(t, testutils.TestingVM(), []string{"DATE", "TIME"})
}

func TestDate(t *testing.T) {
	fixed := time.Date(2019, time.March, 4, 5, 6, 7, 0, time.Local)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()
	cases := map[string]testutils.SourceTestCase{
		"Default":  {Source: "(DATE)", Pass: testutils.PassEql(lisp.NewString("2019-03-04 05:06:07"))},
		"Format":   {Source: "(DATE '%Y/%m/%d)", Pass: testutils.PassEql(lisp.NewString("2019/03/04"))},
		"Time":     {Source: "(TIME)", Pass: testutils.PassEql(lisp.NewInteger(fixed.Unix()))},
		"List":     {Source: "(DATE '(1 2))", Pass: testutils.PassFailure(lisp.ErrEvaluation)},
		"TooMany":  {Source: "(DATE 'a 'b)", Pass: testutils.PassFailure(lisp.ErrWrongArgumentCount)},
		"TimeArgs": {Source: "(TIME 1)", Pass: testutils.PassFailure(lisp.ErrWrongArgumentCount)},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}
