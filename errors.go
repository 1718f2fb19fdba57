/*
 * errors.go, part of godiff.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package diffusion

import (
	"fmt"
	"strings"
)

//ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	//Precondition errors
	KindNoContext ErrorKind = iota + 1
	KindNoTensor
	KindTensorExists
	KindNoSimulations
	//Argument errors
	KindUnknownParam
	KindInvalidArgument
	//Combination errors
	KindUnknownParamComb
	//Admissibility errors
	KindOutOfRange
)

var kindNames = map[ErrorKind]string{
	KindNoContext:        "no analysis context",
	KindNoTensor:         "no diffusion tensor",
	KindTensorExists:     "diffusion tensor already exists",
	KindNoSimulations:    "no simulations",
	KindUnknownParam:     "unknown parameter",
	KindInvalidArgument:  "invalid argument",
	KindUnknownParamComb: "unknown parameter combination",
	KindOutOfRange:       "value out of range",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

//Sentinel errors, to be used with errors.Is. Any Error of the same kind
//matches them, regardless of its message.
var (
	ErrNoContext        = CError{kind: KindNoContext, msg: "godiff: There is no analysis context"}
	ErrNoTensor         = CError{kind: KindNoTensor, msg: "godiff: No diffusion tensor data exists"}
	ErrTensorExists     = CError{kind: KindTensorExists, msg: "godiff: Diffusion tensor data already exists"}
	ErrNoSimulations    = CError{kind: KindNoSimulations, msg: "godiff: The number of simulations has not been set"}
	ErrUnknownParam     = CError{kind: KindUnknownParam, msg: "godiff: Unknown diffusion tensor parameter"}
	ErrInvalidArgument  = CError{kind: KindInvalidArgument, msg: "godiff: Invalid argument"}
	ErrUnknownParamComb = CError{kind: KindUnknownParamComb, msg: "godiff: Unknown parameter combination"}
	ErrOutOfRange       = CError{kind: KindOutOfRange, msg: "godiff: Parameter value out of range"}
)

//CError is the error type returned by the functions in this package.
//It can carry a "decoration": the list of functions in the calling stack
//through which it was passed.
type CError struct {
	kind ErrorKind
	msg  string
	deco []string
}

func newError(kind ErrorKind, caller string, format string, args ...interface{}) CError {
	return CError{kind: kind, msg: fmt.Sprintf(format, args...), deco: []string{caller}}
}

//Error returns a string with an error message.
func (err CError) Error() string { return err.msg }

//Kind returns the class of the error.
func (err CError) Kind() ErrorKind { return err.kind }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Decoration returns the functions the error went through, joined by ": ".
func (err CError) Decoration() string {
	return strings.Join(err.deco, ": ")
}

//Critical returns true for every error but the ones signaling that some data
//is simply not there.
func (err CError) Critical() bool {
	return err.kind != KindNoTensor && err.kind != KindNoSimulations
}

//Is allows errors.Is to match an error against the sentinel of its kind.
func (err CError) Is(target error) bool {
	t, ok := target.(CError)
	if !ok {
		return false
	}
	return t.kind == err.kind
}

//errDecorate adds the caller's name to the error, if it is a CError,
//and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(CError); ok {
		e.deco = append(append([]string(nil), e.deco...), caller)
		return e
	}
	return err
}

//errf returns a CError of the same kind as the sentinel, with a message and the caller.
func errf(sentinel CError, caller string, format string, args ...interface{}) CError {
	return newError(sentinel.kind, caller, format, args...)
}

//PanicMsg is the type used for all the panics raised in the package, which
//signal programming errors rather than bad data.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrBadWindow PanicMsg = "godiff: The upper bound of the interval must be larger than the lower bound"
)
