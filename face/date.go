// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Calendar date text.

package face

import (
	"fmt"
	"sort"
	"time"
)

// Longest expected date string.
const dateCapacity = len("Xxx 88 Xxx")

type locale struct {
	weekdays [7]string // Sunday first
	months   [12]string
}

var locales = map[string]*locale{
	"it": {
		weekdays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		months:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	},
	"en": {
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	},
}

// Locales returns the names of the supported date locales.
func Locales() []string {
	var l []string
	for k := range locales {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

// Date holds the formatted date shown on the face.
type Date struct {
	loc  *locale
	text *Text
}

// NewDate creates a Date using the named locale.
func NewDate(name string) (*Date, error) {
	l, ok := locales[name]
	if !ok {
		return nil, fmt.Errorf("%s: unknown locale", name)
	}
	return &Date{loc: l, text: NewText(dateCapacity, "")}, nil
}

// Update recomputes the date text from t and returns it.
func (d *Date) Update(t time.Time) string {
	d.text.Set(formatDate(d.loc, t))
	return d.text.String()
}

func (d *Date) String() string {
	return d.text.String()
}

func formatDate(l *locale, t time.Time) string {
	return fmt.Sprintf("%s %d %s", l.weekdays[t.Weekday()], t.Day(), l.months[t.Month()-1])
}
