package touchmap

import (
	"fmt"

	"github.com/d5/tengo/v2"
)

// ScriptModuleName is the name trigger scripts import the touch API under:
//
//	touch := import("touch")
const ScriptModuleName = "touch"

// NewScriptModule builds the attributes of the "touch" script module. The
// functions read from hits and route block, restore and command through
// commands.
//
//	on_screen(x, y, w, h)   ScreenHit
//	on_map(x, y, w, h)      MapHit
//	on_tile(x, y)           TileHit
//	tile_width()            tile width in pixels
//	tile_height()           tile height in pixels
//	scroll_x(), scroll_y()  scroll offset in tiles
//	event_x(id), event_y(id)              EventTile
//	event_pixel_x(id), event_pixel_y(id)  EventPixel
//	block()                 disableTtm
//	restore()               enableTtm
//	command(name, args...)  any command; returns whether it was handled
func NewScriptModule(hits *HitTestService, commands *CommandDispatcher) map[string]tengo.Object {
	attrs := map[string]tengo.Object{}

	attrs["on_screen"] = rectFunc("on_screen", hits.ScreenHit)
	attrs["on_map"] = rectFunc("on_map", hits.MapHit)
	attrs["on_tile"] = &tengo.UserFunction{Name: "on_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs("on_tile", args, "x", "y")
		if err != nil {
			return nil, err
		}
		return boolObject(hits.TileHit(v[0], v[1])), nil
	}}

	attrs["tile_width"] = intFunc("tile_width", hits.TileWidth)
	attrs["tile_height"] = intFunc("tile_height", hits.TileHeight)
	attrs["scroll_x"] = intFunc("scroll_x", hits.ScrollX)
	attrs["scroll_y"] = intFunc("scroll_y", hits.ScrollY)

	attrs["event_x"] = eventFunc("event_x", hits, func(id int) int { x, _ := hits.EventTile(id); return x })
	attrs["event_y"] = eventFunc("event_y", hits, func(id int) int { _, y := hits.EventTile(id); return y })
	attrs["event_pixel_x"] = eventFunc("event_pixel_x", hits, func(id int) int { x, _ := hits.EventPixel(id); return x })
	attrs["event_pixel_y"] = eventFunc("event_pixel_y", hits, func(id int) int { _, y := hits.EventPixel(id); return y })

	attrs["block"] = &tengo.UserFunction{Name: "block", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(commands.Dispatch(CommandDisableTouchToMove)), nil
	}}
	attrs["restore"] = &tengo.UserFunction{Name: "restore", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(commands.Dispatch(CommandEnableTouchToMove)), nil
	}}
	attrs["command"] = &tengo.UserFunction{Name: "command", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		strs := make([]string, len(args))
		for i, a := range args {
			s, ok := tengo.ToString(a)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{
					Name:     fmt.Sprintf("arg %d", i),
					Expected: "string",
					Found:    a.TypeName(),
				}
			}
			strs[i] = s
		}
		return boolObject(commands.Dispatch(strs[0], strs[1:]...)), nil
	}}

	return attrs
}

func rectFunc(name string, fn func(x, y, w, h int) bool) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs(name, args, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		return boolObject(fn(v[0], v[1], v[2], v[3])), nil
	}}
}

func intFunc(name string, fn func() int) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		return &tengo.Int{Value: int64(fn())}, nil
	}}
}

// eventFunc wraps an event accessor. When the map can report whether an
// event exists, unknown ids become script errors instead of host panics.
func eventFunc(name string, hits *HitTestService, fn func(id int) int) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs(name, args, "id")
		if err != nil {
			return nil, err
		}
		if lookup, ok := hits.m.(EventLookup); ok && !lookup.HasEvent(v[0]) {
			return nil, fmt.Errorf("%s: unknown event %d", name, v[0])
		}
		return &tengo.Int{Value: int64(fn(v[0]))}, nil
	}}
}

// intArgs converts args to ints, requiring exactly len(names) of them.
func intArgs(fn string, args []tengo.Object, names ...string) ([]int, error) {
	if len(args) != len(names) {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fn + ": " + names[i],
				Expected: "int",
				Found:    a.TypeName(),
			}
		}
		out[i] = v
	}
	return out, nil
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
