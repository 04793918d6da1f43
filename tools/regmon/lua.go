package regmon

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"dsio/hardware/nds"
)

// newState returns a lua interpreter with the monitor's functions installed:
//
//	peek(core, name [, i])         -> value
//	poke(core, name, [i,] value)
//	core([name])                   -> previous core name
//	print(...)                     writes to the monitor's output
func (m *Monitor) newState() *lua.LState {
	L := lua.NewState()
	L.SetGlobal("peek", L.NewFunction(m.luaPeek))
	L.SetGlobal("poke", L.NewFunction(m.luaPoke))
	L.SetGlobal("core", L.NewFunction(m.luaCore))
	L.SetGlobal("print", L.NewFunction(m.luaPrint))
	return L
}

// RunScript runs lua source; name is used in error messages.
func (m *Monitor) RunScript(name, src string) error {
	L := m.newState()
	defer L.Close()
	fn, err := L.LoadString(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RunFile runs the lua script at path.
func (m *Monitor) RunFile(path string) error {
	L := m.newState()
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func checkCore(L *lua.LState, n int) nds.Core {
	c, err := nds.ParseCore(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return c
}

func (m *Monitor) luaPeek(L *lua.LState) int {
	c := checkCore(L, 1)
	name := L.CheckString(2)
	index := L.OptInt(3, NoIndex)
	v, err := m.Peek(c, name, index)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (m *Monitor) luaPoke(L *lua.LState) int {
	c := checkCore(L, 1)
	name := L.CheckString(2)
	index := NoIndex
	valueArg := 3
	if L.GetTop() >= 4 {
		index = L.CheckInt(3)
		valueArg = 4
	}
	v := L.CheckNumber(valueArg)
	if v < 0 || v > 0xFFFFFFFF || v != lua.LNumber(uint32(v)) {
		L.ArgError(valueArg, "value must be an unsigned 32 bit integer")
	}
	if err := m.Poke(c, name, index, uint32(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (m *Monitor) luaCore(L *lua.LState) int {
	prev := m.core
	if L.GetTop() >= 1 {
		m.core = checkCore(L, 1)
	}
	L.Push(lua.LString(prev.String()))
	return 1
}

func (m *Monitor) luaPrint(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(m.out, strings.Join(parts, "\t"))
	return 0
}
