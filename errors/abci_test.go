package errors

import (
	stdlib "errors"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			debug:    false,
			wantCode: 3,
			wantLog:  "not found",
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrNotFound, "inner"), "outer"),
			debug:    false,
			wantCode: 3,
			wantLog:  "outer: inner: not found",
		},
		"nil is empty message": {
			err:      nil,
			debug:    false,
			wantCode: 0,
			wantLog:  "",
		},
		"stdlib is generic message": {
			err:      stdlib.New("stdlib"),
			debug:    false,
			wantCode: 1,
			wantLog:  "internal error",
		},
		"stdlib returns error message in debug mode": {
			err:      stdlib.New("stdlib"),
			debug:    true,
			wantCode: 1,
			wantLog:  "stdlib",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if !strings.HasPrefix(log, tc.wantLog) {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIErrorRoundtrip(t *testing.T) {
	code, log := ABCIInfo(Wrap(ErrUnauthorized, "no permission"), false)
	err := ABCIError(code, log)
	if !ErrUnauthorized.Is(err) {
		t.Fatalf("reconstructed error does not match the root: %+v", err)
	}
	if err.Error() != "no permission: unauthorized: unauthorized" {
		t.Logf("reconstructed message: %s", err.Error())
	}

	if err := ABCIError(SuccessABCICode, ""); err != nil {
		t.Fatalf("success code must produce no error, got %+v", err)
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("reduct must hide panic errors")
	}
	if err := Redact(stdlib.New("stdlib"), false); err.Error() != "internal error" {
		t.Errorf("want generic message, got %s", err.Error())
	}
	if err := Redact(ErrNotFound, false); !ErrNotFound.Is(err) {
		t.Errorf("registered errors must pass through, got %s", err)
	}
	se := stdlib.New("stdlib")
	if err := Redact(se, true); err != se {
		t.Error("no redact in debug mode")
	}
}
