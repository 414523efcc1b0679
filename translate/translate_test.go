package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	defer use(saved)

	assert.NoError(SetLanguage("ja-JP"))
	assert.Equal(language.MustParse("ja-JP"), Language())

	assert.NoError(SetLanguage("en-US"))
	assert.Equal(language.AmericanEnglish, Language())

	assert.Equal("arena [0x00001000, 0x00002000)", From("arena %v", "[0x00001000, 0x00002000)"))
}

func TestSetLanguage_Invalid(t *testing.T) {
	assert := assert.New(t)

	saved := Language()
	defer use(saved)

	assert.Error(SetLanguage("not a language!"))
	assert.Equal(saved, Language())
}

func TestFrom_Default(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("subsystem ps", From("subsystem %v", "ps"))
}
