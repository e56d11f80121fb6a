package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtLeastOne(t *testing.T) {
	assert.Equal(t, 1, AtLeastOne(""))
	assert.Equal(t, 1, AtLeastOne("abc"))
	assert.Equal(t, 1, AtLeastOne("0"))
	assert.Equal(t, 1, AtLeastOne("-4"))
	assert.Equal(t, 3, AtLeastOne(" 3 "))
	assert.Equal(t, 1, AtLeastOne("2.5"))
}

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("Ada Lovelace King")
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace King", last)

	first, last = SplitFullName("  Plato ")
	assert.Equal(t, "Plato", first)
	assert.Equal(t, "", last)
}

func TestIsChecked(t *testing.T) {
	assert.True(t, IsChecked("on"))
	assert.True(t, IsChecked("TRUE"))
	assert.False(t, IsChecked(""))
	assert.False(t, IsChecked("off"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", " b ", "c"))
	assert.Equal(t, "", FirstNonEmpty("", " "))
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "Cape Town", NormalizeSpace("  Cape \t Town\n"))
	assert.Equal(t, "", NormalizeSpace("   "))
}
