// SPDX-License-Identifier: MPL-2.0

package coerce

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"
	"regexp"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/invowk/argbind/pkg/argspec"
)

// ErrNotADirectory is wrapped when DirExists rejects a path.
var ErrNotADirectory = errors.New("not an existing directory")

type (
	// RangeValidator accepts numbers inside inclusive bounds. Either bound may be open.
	RangeValidator struct {
		lo, hi       float64
		loInt, hiInt int64
		hasLo, hasHi bool
		integral     bool
	}

	// RangeError is returned by RangeValidator. Min or Max is empty for an open bound.
	RangeError struct {
		Value    string
		Min, Max string
	}

	// PatternValidator accepts text matching a regular expression.
	PatternValidator struct {
		re *regexp.Regexp
	}

	// FuncValidator wraps a caller-supplied check.
	FuncValidator struct {
		check func(argspec.Value) error
	}

	// DirValidator accepts paths that name an existing directory.
	DirValidator struct {
		stat func(string) (fs.FileInfo, error)
	}
)

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	switch {
	case e.Min != "" && e.Max != "":
		return fmt.Sprintf("%s is not in range %s..=%s", e.Value, e.Min, e.Max)
	case e.Min != "":
		return fmt.Sprintf("%s is less than the minimum %s", e.Value, e.Min)
	default:
		return fmt.Sprintf("%s is greater than the maximum %s", e.Value, e.Max)
	}
}

// Range accepts values in lo..=hi.
func Range[T constraints.Integer | constraints.Float](lo, hi T) *RangeValidator {
	r := AtLeast(lo)
	r.setHi(hi)
	return r
}

// AtLeast accepts values >= lo.
func AtLeast[T constraints.Integer | constraints.Float](lo T) *RangeValidator {
	r := &RangeValidator{}
	_, _, r.integral = number(lo)
	r.setLo(lo)
	return r
}

// AtMost accepts values <= hi.
func AtMost[T constraints.Integer | constraints.Float](hi T) *RangeValidator {
	r := &RangeValidator{}
	_, _, r.integral = number(hi)
	r.setHi(hi)
	return r
}

// number normalizes any integer or float kind (including named types) for bound storage.
func number(v any) (f float64, i int64, integral bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			u = math.MaxInt64
		}
		return float64(rv.Uint()), int64(u), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), int64(rv.Float()), false
	default:
		return 0, 0, false
	}
}

func (r *RangeValidator) setLo(v any) {
	r.hasLo = true
	r.lo, r.loInt, _ = number(v)
}

func (r *RangeValidator) setHi(v any) {
	r.hasHi = true
	r.hi, r.hiInt, _ = number(v)
}

// Validate implements argspec.Validator. Non-numeric values are rejected.
func (r *RangeValidator) Validate(v argspec.Value) error {
	switch v.Type() {
	case argspec.TypeInt:
		if r.integral {
			if (r.hasLo && v.Int() < r.loInt) || (r.hasHi && v.Int() > r.hiInt) {
				return r.fail(v)
			}
			return nil
		}
		return r.checkFloat(v, float64(v.Int()))
	case argspec.TypeFloat:
		return r.checkFloat(v, v.Float())
	default:
		return fmt.Errorf("range check needs a number, got %s", v.Type())
	}
}

func (r *RangeValidator) checkFloat(v argspec.Value, f float64) error {
	if math.IsNaN(f) || (r.hasLo && f < r.lo) || (r.hasHi && f > r.hi) {
		return r.fail(v)
	}
	return nil
}

func (r *RangeValidator) fail(v argspec.Value) error {
	return &RangeError{Value: v.String(), Min: r.bound(r.hasLo, r.lo, r.loInt), Max: r.bound(r.hasHi, r.hi, r.hiInt)}
}

func (r *RangeValidator) bound(has bool, f float64, i int64) string {
	if !has {
		return ""
	}
	if r.integral {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Pattern compiles expr into a validator that requires a match.
func Pattern(expr string) (*PatternValidator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid validation pattern %q: %w", expr, err)
	}
	return &PatternValidator{re: re}, nil
}

// MustPattern is like Pattern but panics on an invalid expression.
func MustPattern(expr string) *PatternValidator {
	p, err := Pattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate implements argspec.Validator.
func (p *PatternValidator) Validate(v argspec.Value) error {
	if !p.re.MatchString(v.String()) {
		return fmt.Errorf("'%s' does not match required pattern '%s'", v.String(), p.re.String())
	}
	return nil
}

// Func builds a validator from a predicate; message is reported when it returns false.
func Func(pred func(argspec.Value) bool, message string) *FuncValidator {
	return &FuncValidator{check: func(v argspec.Value) error {
		if pred(v) {
			return nil
		}
		return errors.New(message)
	}}
}

// Check builds a validator from a function returning the rejection error.
func Check(fn func(argspec.Value) error) *FuncValidator {
	return &FuncValidator{check: fn}
}

// Validate implements argspec.Validator.
func (f *FuncValidator) Validate(v argspec.Value) error {
	return f.check(v)
}

// DirExists requires the value to name an existing directory on the host filesystem.
func DirExists() *DirValidator {
	return &DirValidator{stat: os.Stat}
}

// DirExistsFS requires the value to name an existing directory inside fsys.
func DirExistsFS(fsys fs.FS) *DirValidator {
	return &DirValidator{stat: func(name string) (fs.FileInfo, error) { return fs.Stat(fsys, name) }}
}

// Validate implements argspec.Validator.
func (d *DirValidator) Validate(v argspec.Value) error {
	info, err := d.stat(v.String())
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory does not exist: %s: %w", v.String(), ErrNotADirectory)
	}
	return nil
}
