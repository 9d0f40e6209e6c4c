package model

import "strings"

// Department is an organizing department. The zero value is not a department.
type Department int

// Declaration order is the PD listing order.
const (
	CS Department = iota + 1
	EE
	MATH
	ITI
	BAIT
)

type departmentInfo struct {
	code string
	name string
}

var departments = map[Department]departmentInfo{
	CS:   {code: "cs", name: "Computer Science"},
	EE:   {code: "ee", name: "Electrical Engineering"},
	MATH: {code: "math", name: "Mathematics"},
	ITI:  {code: "iti", name: "Information Technology and Informatics"},
	BAIT: {code: "bait", name: "Business Analytics and Information Technology"},
}

// Departments lists every department in declaration order.
func Departments() []Department {
	return []Department{CS, EE, MATH, ITI, BAIT}
}

// ParseDepartment looks a department up by code, ignoring case.
func ParseDepartment(s string) (Department, bool) {
	s = strings.ToLower(s)
	for _, d := range Departments() {
		if departments[d].code == s {
			return d, true
		}
	}
	return 0, false
}

func (d Department) Valid() bool {
	_, ok := departments[d]
	return ok
}

// Code is the lowercase code, which is also the required email local part.
func (d Department) Code() string {
	return departments[d].code
}

// Name is the full display name, e.g. "Computer Science".
func (d Department) Name() string {
	return departments[d].name
}

func (d Department) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return strings.ToUpper(departments[d].code)
}
