package sim

import (
	"embed"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed levels/*.tengo
var levelScriptsFS embed.FS

const scriptedLevelName = "levels/nexus.tengo"

// buildScripted runs the embedded level script, which places entities
// through the builtins registered here. A script error aborts the build
// and is handled by the fallback chain.
func (w *World) buildScripted() error {
	src, err := levelScriptsFS.ReadFile(scriptedLevelName)
	if err != nil {
		return fmt.Errorf("level script %s: %w", scriptedLevelName, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	add := func(name string, fn tengo.CallableFunc) {
		_ = script.Add(name, &tengo.UserFunction{Name: name, Value: fn})
	}

	add("platform", func(args ...tengo.Object) (tengo.Object, error) {
		vals, err := floatArgs(args, 5)
		if err != nil {
			return nil, err
		}
		if vals[2] <= 0 || vals[3] <= 0 {
			return nil, fmt.Errorf("platform size %gx%g", vals[2], vals[3])
		}
		w.addPlatform(vals[0], vals[1], vals[2], vals[3], Dimension(vals[4]))
		return tengo.UndefinedValue, nil
	})
	add("enemy", func(args ...tengo.Object) (tengo.Object, error) {
		vals, err := floatArgs(args, 4)
		if err != nil {
			return nil, err
		}
		if vals[1] >= vals[2] {
			return nil, fmt.Errorf("enemy patrol [%g, %g]", vals[1], vals[2])
		}
		w.addEnemy(vals[0], vals[1], vals[2], vals[3])
		return tengo.UndefinedValue, nil
	})
	add("collectible", func(args ...tengo.Object) (tengo.Object, error) {
		vals, err := floatArgs(args, 2)
		if err != nil {
			return nil, err
		}
		w.collectibles = append(w.collectibles, NewCollectible(vals[0], vals[1]))
		return tengo.UndefinedValue, nil
	})
	add("powerup", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 4 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, err := floatArg(args, 0)
		if err != nil {
			return nil, err
		}
		y, err := floatArg(args, 1)
		if err != nil {
			return nil, err
		}
		kind, ok := tengo.ToString(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "kind", Expected: "string", Found: args[2].TypeName()}
		}
		if _, ok := w.cfg.Powerups[kind]; !ok {
			return nil, fmt.Errorf("unknown powerup %q", kind)
		}
		dim, err := floatArg(args, 3)
		if err != nil {
			return nil, err
		}
		w.powerups = append(w.powerups, NewPowerup(x, y, PowerupType(kind), Dimension(dim)))
		return tengo.UndefinedValue, nil
	})
	add("portal", func(args ...tengo.Object) (tengo.Object, error) {
		vals, err := floatArgs(args, 2)
		if err != nil {
			return nil, err
		}
		w.portals = append(w.portals, NewPortal(vals[0], vals[1]))
		return tengo.UndefinedValue, nil
	})
	add("ground_y", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: w.groundY()}, nil
	})

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("level script %s: %w", scriptedLevelName, err)
	}
	return nil
}

func floatArg(args []tengo.Object, i int) (float64, error) {
	if i >= len(args) {
		return 0, tengo.ErrWrongNumArguments
	}
	f, ok := tengo.ToFloat64(args[i])
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{
			Name:     fmt.Sprintf("arg %d", i),
			Expected: "number",
			Found:    args[i].TypeName(),
		}
	}
	return f, nil
}

func floatArgs(args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	vals := make([]float64, n)
	for i := range vals {
		f, err := floatArg(args, i)
		if err != nil {
			return nil, err
		}
		vals[i] = f
	}
	return vals, nil
}
