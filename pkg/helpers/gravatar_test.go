package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	want := "https://www.gravatar.com/avatar/3e3417d7ef77d5932a6734b916515ed5?s=300&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL("ada@example.com"))
}

func TestGravatarURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, GravatarURL("ada@example.com"), GravatarURL("  ADA@Example.COM  "))
}
