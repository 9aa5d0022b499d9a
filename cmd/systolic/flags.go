// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/systolic/accel"
)

// roundingValue adapts accel.Rounding to pflag.Value.
type roundingValue struct{ p *accel.Rounding }

var _ pflag.Value = roundingValue{}

func newRoundingValue(p *accel.Rounding) roundingValue { return roundingValue{p: p} }

func (v roundingValue) String() string {
	if v.p == nil {
		return accel.DefaultRounding.String()
	}
	return v.p.String()
}

func (v roundingValue) Set(s string) error {
	r, err := accel.ParseRounding(s)
	if err != nil {
		return err
	}
	*v.p = r
	return nil
}

func (roundingValue) Type() string { return "rounding" }

// accPolicyValue adapts accel.AccPolicy to pflag.Value.
type accPolicyValue struct{ p *accel.AccPolicy }

var _ pflag.Value = accPolicyValue{}

func newAccPolicyValue(p *accel.AccPolicy) accPolicyValue { return accPolicyValue{p: p} }

func (v accPolicyValue) String() string {
	if v.p == nil {
		return accel.DefaultAccPolicy.String()
	}
	return v.p.String()
}

func (v accPolicyValue) Set(s string) error {
	p, err := accel.ParseAccPolicy(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (accPolicyValue) Type() string { return "policy" }

func joinNames(names []string) string { return strings.Join(names, "|") }
