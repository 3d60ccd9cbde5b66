package ssn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/backoffice/internal/domain"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "full number", value: "900101-1234567", want: "900101-1*******"},
		{name: "already masked", value: "900101-1******", want: "900101-1******"},
		{name: "masked output is stable", value: "900101-1*******", want: "900101-1*******"},
		{name: "exactly seven", value: "900101-", want: "900101-"},
		{name: "gender digit only", value: "900101-2", want: "900101-2*******"},
		{name: "short", value: "9001", want: "9001"},
		{name: "empty", value: "", want: ""},
		{name: "mask after gender digit", value: "900101-1*34", want: "900101-1*34"},
		{name: "non digit at gender index", value: "900101-X123456", want: "900101-X*******"},
		{name: "multibyte prefix", value: "가나다라마바사1234", want: "가나다라마바사1*******"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.value))
		})
	}
}

func TestMaskIdempotent(t *testing.T) {
	once := Mask("851224-2345678")
	assert.Equal(t, once, Mask(once))
}

func TestDeriveGender(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   domain.Gender
		wantOK bool
	}{
		{name: "odd is male", value: "900101-1234567", want: domain.GenderMale, wantOK: true},
		{name: "even is female", value: "900101-2234567", want: domain.GenderFemale, wantOK: true},
		{name: "three is male", value: "010101-3******", want: domain.GenderMale, wantOK: true},
		{name: "four is female", value: "010101-4", want: domain.GenderFemale, wantOK: true},
		{name: "zero is female", value: "010101-0", want: domain.GenderFemale, wantOK: true},
		{name: "non digit", value: "900101-*******", want: domain.GenderUnset},
		{name: "too short", value: "900101-", want: domain.GenderUnset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveGender(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestApply(t *testing.T) {
	masked, gender := Apply("900101-1234567", domain.GenderUnset)
	assert.Equal(t, "900101-1*******", masked)
	assert.Equal(t, domain.GenderMale, gender)

	masked, gender = Apply("900101-2234567", domain.GenderUnset)
	assert.Equal(t, "900101-2*******", masked)
	assert.Equal(t, domain.GenderFemale, gender)
}

func TestApplyKeepsChosenGender(t *testing.T) {
	_, gender := Apply("900101-1234567", domain.GenderFemale)
	assert.Equal(t, domain.GenderFemale, gender)
}

func TestApplyShortInputLeavesGenderUnset(t *testing.T) {
	masked, gender := Apply("900101", domain.GenderUnset)
	assert.Equal(t, "900101", masked)
	assert.Equal(t, domain.GenderUnset, gender)
}
