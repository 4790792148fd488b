// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Supported lists the languages with a full set of messages. The first entry
// is the reference language.
var Supported = []language.Tag{language.Russian, language.English}

// Catalog resolves message keys to localized texts.
type Catalog struct {
	builder  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
	printers map[language.Tag]*message.Printer
}

// NewCatalog builds the message catalog. defaultLocale is a BCP 47 tag used
// whenever a request carries no usable Accept-Language header; it must match
// one of the [Supported] languages.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for _, tag := range Supported {
		base, _ := tag.Base()
		for key, text := range translations[base.String()] {
			if err := builder.SetString(tag, string(key), text); err != nil {
				return nil, fmt.Errorf("error building %s catalog: %w", tag, err)
			}
		}
	}

	c := &Catalog{
		builder:  builder,
		matcher:  language.NewMatcher(Supported),
		printers: make(map[language.Tag]*message.Printer, len(Supported)),
	}

	requested, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnsupportedLocale, defaultLocale, err)
	}
	_, idx, confidence := c.matcher.Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedLocale, defaultLocale)
	}
	c.fallback = Supported[idx]

	for _, tag := range Supported {
		c.printers[tag] = message.NewPrinter(tag, message.Catalog(builder))
	}

	return c, nil
}

// Match negotiates the message language from an Accept-Language header value.
// An empty, malformed or unmatched header yields the default locale.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}

	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.fallback
	}

	return Supported[idx]
}

// Message returns the text of key in the language tag. Unsupported tags use
// the default language.
func (c *Catalog) Message(tag language.Tag, key Key) string {
	p, ok := c.printers[tag]
	if !ok {
		p = c.printers[c.fallback]
	}

	return p.Sprintf(string(key))
}
