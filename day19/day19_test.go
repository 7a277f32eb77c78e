package day19_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/day19"
)

const sample = `px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}`

func TestPartOne(t *testing.T) {
	got, err := day19.PartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, 19114, got)
}

func TestPartTwo(t *testing.T) {
	got, err := day19.PartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, 167409079868000, got)
}

func TestTemplate_Split(t *testing.T) {
	full := day19.Template{{1, 4000}, {1, 4000}, {1, 4000}, {1, 4000}}

	match, rest := full.Split(day19.Rule{Var: 3, Op: '<', Val: 1351})
	assert.Equal(t, day19.Range{Lo: 1, Hi: 1350}, match[3])
	assert.Equal(t, day19.Range{Lo: 1351, Hi: 4000}, rest[3])
	assert.Equal(t, full.Count(), match.Count()+rest.Count())

	match, rest = full.Split(day19.Rule{Var: 1, Op: '>', Val: 4000})
	assert.Zero(t, match.Count())
	assert.Equal(t, full, rest)

	match, rest = full.Split(day19.Rule{Target: "A"})
	assert.Equal(t, full, match)
	assert.Zero(t, rest.Count())
}

func TestErrors(t *testing.T) {
	for _, in := range []string{
		"in{x<10:A}",
		"in{q<10:A,R}",
		"in{x=10:A,R}",
		"px{A}",
		"in{x<10:A,R}\n\n{x=1,m=2,a=3}",
		"in{x<10:A,R}\n\n{x=1,m=2,a=3,z=4}",
	} {
		_, err := day19.PartOne(in)
		require.ErrorIs(t, err, day19.ErrInvalidInput, in)
	}

	_, err := day19.PartTwo("in{x<10:zz,R}")
	require.ErrorIs(t, err, day19.ErrInvalidInput)
	_, err = day19.PartTwo("in{x<10:in,R}")
	require.ErrorIs(t, err, day19.ErrInvalidInput)
}
