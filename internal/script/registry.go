// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

// Package script classifies and stores server scripts by their declared
// contract. The embedded Lua engine is used only to evaluate the source and
// inspect its entry points; game logic execution belongs to the consuming
// server.
package script

import (
	"strings"

	"github.com/samber/oops"
	lua "github.com/yuin/gopher-lua"
)

// Script is a registered server script.
type Script struct {
	Name   string
	Type   string
	Path   string
	Source string
}

// entryPoints maps a declared script type (lowercased) to the global
// function it must define. AI scripts are handled separately.
var entryPoints = map[string]string{
	"eventcondition":   "check",
	"eventbranchlogic": "check",
	"actiontransform":  "transform",
	"eventtransform":   "transform",
	"actioncustom":     "run",
	"webgame":          "start",
}

// Registry stores scripts split into the AI class and the general class.
// Names are unique within their class.
type Registry struct {
	scripts   map[string]*Script
	aiScripts map[string]*Script
}

// NewRegistry creates an empty script registry.
func NewRegistry() *Registry {
	return &Registry{
		scripts:   make(map[string]*Script),
		aiScripts: make(map[string]*Script),
	}
}

// Register evaluates a script source, extracts its declared name and type
// through the define entry symbol, verifies the entry points its type
// requires and stores it. The source is evaluated in a throwaway state;
// nothing from it runs afterward.
func (r *Registry) Register(path, source string) error {
	errCtx := oops.In("script").With("path", path)

	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return errCtx.Hint("improperly formatted script").Wrap(err)
	}

	define := L.GetGlobal("define")
	if define.Type() != lua.LTFunction {
		return errCtx.New("script has no define function")
	}

	decl := L.NewTable()
	if err := L.CallByParam(lua.P{
		Fn:      define,
		NRet:    1,
		Protect: true,
	}, decl); err != nil {
		return errCtx.Hint("define call failed").Wrap(err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	if num, ok := ret.(lua.LNumber); !ok || int(num) != 0 {
		return errCtx.New("define did not return 0")
	}

	script := &Script{
		Name:   lua.LVAsString(decl.RawGetString("name")),
		Type:   lua.LVAsString(decl.RawGetString("type")),
		Path:   path,
		Source: source,
	}
	if script.Name == "" || script.Type == "" {
		return errCtx.New("script is not properly defined")
	}

	declared := strings.ToLower(script.Type)
	if declared == "ai" {
		return r.registerAI(L, script, errCtx)
	}
	return r.registerGeneral(L, script, declared, errCtx)
}

func (r *Registry) registerAI(L *lua.LState, script *Script, errCtx oops.OopsErrorBuilder) error {
	if _, exists := r.aiScripts[script.Name]; exists {
		return errCtx.With("name", script.Name).New("duplicate AI script")
	}

	if L.GetGlobal("prepare").Type() != lua.LTFunction {
		return errCtx.With("name", script.Name).New("AI script has no prepare function")
	}

	r.aiScripts[script.Name] = script
	return nil
}

func (r *Registry) registerGeneral(L *lua.LState, script *Script, declared string, errCtx oops.OopsErrorBuilder) error {
	if _, exists := r.scripts[script.Name]; exists {
		return errCtx.With("name", script.Name).New("duplicate script")
	}

	entry, ok := entryPoints[declared]
	if !ok {
		return errCtx.With("type", script.Type).New("invalid script type")
	}

	if L.GetGlobal(entry).Type() != lua.LTFunction {
		return errCtx.With("name", script.Name).With("entry", entry).New("script missing required entry point")
	}

	// Transform scripts run inside the engine's own prepared state; a
	// prepare function would shadow the AI contract.
	if entry == "transform" && L.GetGlobal("prepare").Type() != lua.LTNil {
		return errCtx.With("name", script.Name).New("transform script declares reserved function prepare")
	}

	r.scripts[script.Name] = script
	return nil
}

// Script returns a general-class script by name.
func (r *Registry) Script(name string) *Script {
	return r.scripts[name]
}

// AIScript returns an AI-class script by name.
func (r *Registry) AIScript(name string) *Script {
	return r.aiScripts[name]
}

// Names returns the registered general-class script names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		out = append(out, name)
	}
	return out
}

// AINames returns the registered AI-class script names.
func (r *Registry) AINames() []string {
	out := make([]string, 0, len(r.aiScripts))
	for name := range r.aiScripts {
		out = append(out, name)
	}
	return out
}

// Has reports whether a name is registered in either class.
func (r *Registry) Has(name string) bool {
	_, general := r.scripts[name]
	_, ai := r.aiScripts[name]
	return general || ai
}
