package gen

import "text/template"

// Template for one array file. The method bodies follow seqbuf.Buffer line
// for line so both routes fail the same way.

var arrayTemplate = template.Must(template.New("array").Parse(`// Code generated by seqbuf-gen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$t := .TypeName}}{{$e := .Elem}}{{$doc := .GenerateComments}}
{{if $doc}}// {{$t}} is a growable, contiguous, bounds-checked sequence of {{$e}}.
// Elements live at indices [0, Len()). Create one with {{.Constructor}}.
{{end}}type {{$t}} struct {
	storage  []{{$e}}
	count    int
	settings seqbuf.Settings
	released bool
}

{{if $doc}}// {{.Constructor}} returns an empty {{$t}} with room for exactly
// initialCapacity elements.
{{end}}func {{.Constructor}}(initialCapacity int, opts ...seqbuf.Option) (*{{$t}}, error) {
	settings := seqbuf.NewSettings(opts...)

	err := settings.Limits.Check("{{.Constructor}}", initialCapacity, seqbuf.ElemSize[{{$e}}]())
	if err != nil {
		return nil, settings.Report(err)
	}

	return &{{$t}}{
		storage:  make([]{{$e}}, initialCapacity),
		settings: settings,
	}, nil
}

{{if $doc}}// Free releases the backing storage. Calling it again is a no-op.
{{end}}func (a *{{$t}}) Free() {
	if a.released {
		return
	}

	a.storage = nil
	a.count = 0
	a.released = true
}

{{if $doc}}// Len returns the number of live elements.
{{end}}func (a *{{$t}}) Len() int {
	return a.count
}

{{if $doc}}// Cap returns the number of allocated slots.
{{end}}func (a *{{$t}}) Cap() int {
	return len(a.storage)
}

{{if $doc}}// IsEmpty reports whether the array holds no elements.
{{end}}func (a *{{$t}}) IsEmpty() bool {
	return a.count == 0
}

{{if $doc}}// IsFull reports whether the next insertion has to grow the array.
{{end}}func (a *{{$t}}) IsFull() bool {
	return !a.released && a.count == len(a.storage)
}

{{if $doc}}// Data returns a read-only view of the storage, invalidated by Push,
// Insert and Free.
{{end}}func (a *{{$t}}) Data() seqbuf.View[{{$e}}] {
	if a.released {
		_ = a.settings.Report(seqbuf.Released("{{$t}}.Data"))
	}

	return seqbuf.NewView(a.storage, a.count)
}

{{if $doc}}// DataMut returns the backing storage itself. Only the first Len()
// elements are meaningful.
{{end}}func (a *{{$t}}) DataMut() []{{$e}} {
	if a.released {
		_ = a.settings.Report(seqbuf.Released("{{$t}}.DataMut"))
	}

	return a.storage
}

{{if $doc}}// Push appends item, growing the array if it is full.
{{end}}func (a *{{$t}}) Push(item {{$e}}) error {
	if a.released {
		return a.settings.Report(seqbuf.Released("{{$t}}.Push"))
	}

	if err := a.grow(); err != nil {
		return a.settings.Report(err)
	}

	a.storage[a.count] = item
	a.count++

	return nil
}

{{if $doc}}// Insert places item at index, shifting [index, Len()) one slot up.
// index == Len() behaves like Push.
{{end}}func (a *{{$t}}) Insert(index int, item {{$e}}) error {
	if a.released {
		return a.settings.Report(seqbuf.Released("{{$t}}.Insert"))
	}

	if err := seqbuf.CheckPosition("{{$t}}.Insert", index, a.count); err != nil {
		return a.settings.Report(err)
	}

	if err := a.grow(); err != nil {
		return a.settings.Report(err)
	}

	if index < a.count {
		copy(a.storage[index+1:a.count+1], a.storage[index:a.count])
	}

	a.storage[index] = item
	a.count++

	return nil
}

{{if $doc}}// Set overwrites the element at index.
{{end}}func (a *{{$t}}) Set(index int, item {{$e}}) error {
	if a.released {
		return a.settings.Report(seqbuf.Released("{{$t}}.Set"))
	}

	if err := seqbuf.CheckIndex("{{$t}}.Set", index, a.count); err != nil {
		return a.settings.Report(err)
	}

	a.storage[index] = item

	return nil
}

{{if $doc}}// Remove deletes the element at index, shifting (index, Len()) one slot
// down.
{{end}}func (a *{{$t}}) Remove(index int) error {
	if a.released {
		return a.settings.Report(seqbuf.Released("{{$t}}.Remove"))
	}

	if err := seqbuf.CheckIndex("{{$t}}.Remove", index, a.count); err != nil {
		return a.settings.Report(err)
	}

	last := a.count - 1
	if index < last {
		copy(a.storage[index:last], a.storage[index+1:a.count])
	}

	var zero {{$e}}
	a.storage[last] = zero
	a.count = last

	return nil
}

{{if $doc}}// Get copies the element at index into out. On failure out is untouched.
// A nil out only validates the index.
{{end}}func (a *{{$t}}) Get(index int, out *{{$e}}) error {
	if a.released {
		return a.settings.Report(seqbuf.Released("{{$t}}.Get"))
	}

	if err := seqbuf.CheckIndex("{{$t}}.Get", index, a.count); err != nil {
		return a.settings.Report(err)
	}

	if out != nil {
		*out = a.storage[index]
	}

	return nil
}

{{if $doc}}// At returns the element at index.
{{end}}func (a *{{$t}}) At(index int) ({{$e}}, error) {
	var item {{$e}}
	if a.released {
		return item, a.settings.Report(seqbuf.Released("{{$t}}.At"))
	}

	if err := seqbuf.CheckIndex("{{$t}}.At", index, a.count); err != nil {
		return item, a.settings.Report(err)
	}

	return a.storage[index], nil
}

{{if $doc}}// Clear drops all elements. Capacity and storage are kept.
{{end}}func (a *{{$t}}) Clear() {
	clear(a.storage[:a.count])
	a.count = 0
}

func (a *{{$t}}) grow() error {
	if a.count < len(a.storage) {
		return nil
	}

	next, err := a.settings.Limits.Grow("{{$t}}.grow", len(a.storage), seqbuf.ElemSize[{{$e}}]())
	if err != nil {
		return err
	}

	storage := make([]{{$e}}, next)
	copy(storage, a.storage[:a.count])
	a.storage = storage

	return nil
}
`))
