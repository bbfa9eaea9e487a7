//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-dsp/internal/wasmbridge"
)

var (
	engine *wasmbridge.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		e, err := wasmbridge.NewEngine()
		if err != nil {
			return err.Error()
		}

		engine = e

		return js.Null()
	}))

	api.Set("setConfig", export(func(args []js.Value) any {
		if engine == nil || len(args) < 4 {
			return js.Null()
		}

		err := engine.SetConfig(args[0].Int(), args[1].Float(), args[2].Float(), args[3].Float())
		if err != nil {
			return err.Error()
		}

		return js.Null()
	}))

	api.Set("applyPreset", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}

		if err := engine.ApplyPreset(args[0].String()); err != nil {
			return err.Error()
		}

		return js.Null()
	}))

	api.Set("process", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}

		samples := toFloat64Slice(args[0])

		out, err := engine.Process(samples)
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	api.Set("processWithConfig", export(func(args []js.Value) any {
		if engine == nil || len(args) < 5 {
			return js.Global().Get("Float32Array").New(0)
		}

		samples := toFloat64Slice(args[0])

		out, err := engine.ProcessWithConfig(samples, args[1].Int(), args[2].Float(), args[3].Float(), args[4].Float())
		if err != nil {
			return err.Error()
		}

		return toFloat32Array(out)
	}))

	js.Global().Set("NoiseReduce", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)

	return f
}

func toFloat64Slice(v js.Value) []float64 {
	n := v.Length()
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		out[i] = v.Index(i).Float()
	}

	return out
}

func toFloat32Array(samples []float64) js.Value {
	arr := js.Global().Get("Float32Array").New(len(samples))

	for i, s := range samples {
		arr.SetIndex(i, s)
	}

	return arr
}
