// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewCatalog_DefaultLocale(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		want    language.Tag
		wantErr bool
	}{
		{name: "russian", locale: "ru", want: language.Russian},
		{name: "english", locale: "en", want: language.English},
		{name: "regional english", locale: "en-GB", want: language.English},
		{name: "unsupported", locale: "ja", wantErr: true},
		{name: "garbage", locale: "not a tag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.locale)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLocale)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Match(""))
			assert.Equal(t, tt.want, c.Match("ja"))
		})
	}
}

func TestCatalog_Match(t *testing.T) {
	c, err := NewCatalog("ru")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "empty header", header: "", want: language.Russian},
		{name: "english", header: "en-US,en;q=0.9", want: language.English},
		{name: "russian preferred", header: "ru-RU,ru;q=0.9,en;q=0.8", want: language.Russian},
		{name: "unsupported only", header: "ja", want: language.Russian},
		{name: "malformed weight", header: "en;q=abc", want: language.Russian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.header))
		})
	}
}

func TestCatalog_ReferenceTexts(t *testing.T) {
	c, err := NewCatalog("ru")
	require.NoError(t, err)

	assert.Equal(t, "Все поля обязательны", c.Message(language.Russian, MsgAllFieldsRequired))
	assert.Equal(t, "Пароль должен быть минимум 6 символов", c.Message(language.Russian, MsgPasswordTooShort))
	assert.Equal(t, "Пользователь с таким именем или email уже существует", c.Message(language.Russian, MsgUserExists))
	assert.Equal(t, "Method not allowed", c.Message(language.Russian, MsgMethodNotAllowed))
}

func TestCatalog_MatchedMessage(t *testing.T) {
	c, err := NewCatalog("ru")
	require.NoError(t, err)

	assert.Equal(t, "All fields are required", c.Message(c.Match("en"), MsgAllFieldsRequired))
	assert.Equal(t, "Method not allowed", c.Message(c.Match("en"), MsgMethodNotAllowed))
	assert.Equal(t, "Все поля обязательны", c.Message(c.Match(""), MsgAllFieldsRequired))
	// unknown tags fall back to the default printer
	assert.Equal(t, "Все поля обязательны", c.Message(language.Japanese, MsgAllFieldsRequired))
}

func TestTranslations_Complete(t *testing.T) {
	keys := []Key{
		MsgAllFieldsRequired, MsgPasswordTooShort, MsgPasswordTooLong, MsgUserExists,
		MsgInvalidRequestBody, MsgInternalServerError, MsgMethodNotAllowed,
	}

	for lang, texts := range translations {
		for _, key := range keys {
			assert.NotEmpty(t, texts[key], "missing %s text for %s", lang, key)
		}
	}
}
