package regmon

import (
	"fmt"
	"sort"
	"strings"

	"dsio/hardware/nds"
	"dsio/hardware/nds/arm7"
	"dsio/hardware/nds/arm9"
	"dsio/hardware/volatile"
)

type command struct {
	usage string
	help  string
	nargs [2]int // min, max
	run   func(m *Monitor, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"core": {"core arm9|arm7", "select the core later commands use", [2]int{0, 1}, (*Monitor).cmdCore},
		"list": {"list [prefix]", "list the registers the current core can access", [2]int{0, 1}, (*Monitor).cmdList},
		"info": {"info NAME", "show a register's table entry", [2]int{1, 1}, (*Monitor).cmdInfo},
		"peek": {"peek NAME[i]", "read a register", [2]int{1, 1}, (*Monitor).cmdPeek},
		"poke": {"poke NAME[i] VALUE", "write a register", [2]int{2, 2}, (*Monitor).cmdPoke},
		"dump": {"dump NAME", "read every element of a register", [2]int{1, 1}, (*Monitor).cmdDump},
		"run":  {"run FILE.lua", "run a lua script", [2]int{1, 1}, (*Monitor).cmdRun},
		"help": {"help", "this message", [2]int{0, 0}, (*Monitor).cmdHelp},
		"quit": {"quit", "leave the monitor", [2]int{0, 0}, func(*Monitor, []string) error { return ErrQuit }},
	}
}

// Exec runs one command line. Blank lines and lines starting with # do
// nothing.
func (m *Monitor) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, fields[0])
	}
	if len(args) < cmd.nargs[0] || len(args) > cmd.nargs[1] {
		return fmt.Errorf("%w: usage: %s", ErrSyntax, cmd.usage)
	}
	return cmd.run(m, args)
}

func (m *Monitor) cmdCore(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(m.out, m.core)
		return nil
	}
	c, err := nds.ParseCore(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	m.core = c
	return nil
}

func names(c nds.Core) []string {
	if c == nds.ARM7 {
		return arm7.Names()
	}
	return arm9.Names()
}

func (m *Monitor) cmdList(args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToUpper(args[0])
	}
	for _, n := range names(m.core) {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		r, _ := nds.Lookup(n)
		fmt.Fprintf(m.out, "%s %s\n", r, r.Description)
	}
	return nil
}

func (m *Monitor) cmdInfo(args []string) error {
	r, ok := nds.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegister, args[0])
	}
	fmt.Fprintf(m.out, "%s (%s): %s\n", r.Name, r.Ident, r.Description)
	fmt.Fprintf(m.out, "  address %#08x, %d bits\n", r.Addr, r.Width)
	if r.IsBlock() {
		step := r.Stride
		if step == 0 {
			step = r.Size()
		}
		fmt.Fprintf(m.out, "  %d elements, %#x apart, ends at %#08x\n", r.Count, step, r.End())
	}
	for _, c := range nds.Cores {
		fmt.Fprintf(m.out, "  %s: %s\n", c, r.Policy.For(c))
	}
	if r.Note != "" {
		fmt.Fprintf(m.out, "  note: %s\n", r.Note)
	}
	if r.Section != "" {
		fmt.Fprintf(m.out, "  see %s\n", r.Section)
	}
	return nil
}

func (m *Monitor) cmdPeek(args []string) error {
	name, i, err := parseRef(args[0])
	if err != nil {
		return err
	}
	v, err := m.Peek(m.core, name, i)
	if err != nil {
		return err
	}
	h, _ := m.Resolve(m.core, name, i)
	fmt.Fprintf(m.out, "%s = %s\n", strings.ToUpper(args[0]), hex(v, h.Size()))
	return nil
}

func (m *Monitor) cmdPoke(args []string) error {
	name, i, err := parseRef(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	return m.Poke(m.core, name, i, v)
}

func (m *Monitor) cmdDump(args []string) error {
	h, err := m.Resolve(m.core, args[0], NoIndex)
	if err != nil {
		return err
	}
	name := strings.ToUpper(args[0])
	ix, ok := h.(volatile.Indexed)
	if !ok {
		v, err := m.Peek(m.core, name, NoIndex)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "%#08x %s = %s\n", h.Addr(), name, hex(v, h.Size()))
		return nil
	}
	if _, ok := ix.Elem(0).(volatile.Peeker); !ok {
		return fmt.Errorf("%w: %s on %s", ErrNotReadable, name, m.core)
	}
	for i := 0; i < ix.Len(); i++ {
		e := ix.Elem(i)
		fmt.Fprintf(m.out, "%#08x %s[%d] = %s\n", e.Addr(), name, i, hex(e.(volatile.Peeker).Peek(), e.Size()))
	}
	return nil
}

func (m *Monitor) cmdRun(args []string) error {
	return m.RunFile(args[0])
}

func (m *Monitor) cmdHelp([]string) error {
	keys := make([]string, 0, len(commands))
	for k := range commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(m.out, "  %-20s %s\n", commands[k].usage, commands[k].help)
	}
	return nil
}
