package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/datecheck/pkg/validator"
)

//go:embed locales/*.yaml
var builtin embed.FS

var placeholder = regexp.MustCompile(`%\{(\w+)\}`)

// Translator holds messages per language. Loading is expected at startup;
// lookups are safe for concurrent use.
type Translator struct {
	mu       sync.RWMutex
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	messages map[string]map[string]string
}

// New returns an empty translator answering in fallback when nothing matches.
func New(fallback language.Tag) *Translator {
	t := &Translator{
		fallback: fallback,
		messages: make(map[string]map[string]string),
	}
	t.rebuild()
	return t
}

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns a shared translator with the built-in messages and English fallback.
func Default() *Translator {
	defaultOnce.Do(func() {
		t := New(language.English)
		if err := t.LoadFS(builtin, "locales/*.yaml"); err != nil {
			panic(fmt.Sprintf("i18n: built-in translations: %v", err))
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// LoadFS loads every file of fsys matching pattern.
func (t *Translator) LoadFS(fsys fs.FS, pattern string) error {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return err
	}
	for _, name := range files {
		f, err := fsys.Open(name)
		if err != nil {
			return err
		}
		err = t.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Load merges a YAML document into the translator. Later documents override
// earlier keys of the same language.
func (t *Translator) Load(r io.Reader) error {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrFailedToParseYAML, err)
	}

	parsed := make(map[string]map[string]string, len(doc))
	for lang, tree := range doc {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		nested, ok := tree.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s: expected a map, got %T", ErrInvalidStructure, lang, tree)
		}
		flat := make(map[string]string)
		if err := flatten("", nested, flat); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStructure, lang, err)
		}
		parsed[tag.String()] = flat
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for tag, flat := range parsed {
		if t.messages[tag] == nil {
			t.messages[tag] = make(map[string]string, len(flat))
		}
		for k, v := range flat {
			t.messages[tag][k] = v
		}
	}
	t.rebuild()
	return nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported value %T", key, v)
		}
	}
	return nil
}

// rebuild refreshes the matcher; the fallback is always the first candidate.
// Callers hold the write lock.
func (t *Translator) rebuild() {
	tags := []language.Tag{t.fallback}
	names := make([]string, 0, len(t.messages))
	for name := range t.messages {
		if name != t.fallback.String() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		tags = append(tags, language.Make(name))
	}
	t.tags = tags
	t.matcher = language.NewMatcher(tags)
}

// Languages returns the loaded languages, fallback first.
func (t *Translator) Languages() []language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]language.Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

// Negotiate picks the best loaded language for an Accept-Language header.
func (t *Translator) Negotiate(acceptLanguage string) language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return t.fallback
	}
	_, i, confidence := t.matcher.Match(wanted...)
	if confidence == language.No {
		return t.fallback
	}
	return t.tags[i]
}

// Translate looks key up in lang, then in the fallback language, and fills
// its placeholders from values.
func (t *Translator) Translate(lang language.Tag, key string, values map[string]any) (string, bool) {
	t.mu.RLock()
	msg, ok := t.lookup(lang, key)
	if !ok {
		msg, ok = t.lookup(t.fallback, key)
	}
	t.mu.RUnlock()
	if !ok {
		return "", false
	}

	return placeholder.ReplaceAllStringFunc(msg, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return m
	}), true
}

// lookup walks from lang up to its root language, so de-AT finds de.
func (t *Translator) lookup(lang language.Tag, key string) (string, bool) {
	for tag := lang; ; tag = tag.Parent() {
		if msg, ok := t.messages[tag.String()][key]; ok {
			return msg, true
		}
		if tag.IsRoot() {
			return "", false
		}
	}
}

// Localize returns a copy of errs with translatable messages in lang.
func (t *Translator) Localize(lang language.Tag, errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}
	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		if e.TranslationKey != "" {
			if msg, ok := t.Translate(lang, e.TranslationKey, e.TranslationValues); ok {
				e.Message = msg
			}
		}
		out[i] = e
	}
	return out
}
