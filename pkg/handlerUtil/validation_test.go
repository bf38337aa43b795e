package handlerUtil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  *string  `json:"name" validate:"required,max=5"`
	Tags  []string `json:"tags" validate:"min=1"`
}

func TestDescribeValidation(t *testing.T) {
	v := NewValidator()

	err := v.Struct(sample{})
	assert.Equal(t, "missing required field: name", DescribeValidation(err))

	long := "abcdefg"
	err = v.Struct(sample{Name: &long, Tags: []string{"a"}})
	assert.Equal(t, "name must be at most 5 characters", DescribeValidation(err))

	short := "ab"
	err = v.Struct(sample{Name: &short})
	assert.Equal(t, "tags must be at least 1", DescribeValidation(err))

	assert.Equal(t, "boom", DescribeValidation(errors.New("boom")))
}
