package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOfferingHelpers(t *testing.T) {
	name := "Huda"
	c := ClassOffering{Status: ClassStatusActive, TeacherName: &name}
	assert.True(t, c.Active())
	assert.Equal(t, "Huda", c.Teacher())

	c = ClassOffering{Status: ClassStatusCancelled}
	assert.False(t, c.Active())
	assert.Empty(t, c.Teacher())
}
