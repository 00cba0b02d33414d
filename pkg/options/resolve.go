package options

import "strings"

// Value is a resolved option. Flags without an argument resolve to a Value
// with HasArg false.
type Value struct {
	Arg    string
	HasArg bool
}

// Resolved maps canonical option keys to the values supplied on the command line.
type Resolved map[string]Value

// Has reports whether the option was given.
func (r Resolved) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Arg returns the argument supplied for key, if any.
func (r Resolved) Arg(key string) (string, bool) {
	v, ok := r[key]
	if !ok || !v.HasArg {
		return "", false
	}
	return v.Arg, true
}

// Resolve matches args (without the program name) against t. It returns the
// resolved options and the positional arguments in their original order.
// Long flags match exactly or by unambiguous prefix and accept "--name=value";
// short flags may be bundled ("-si") and take attached arguments ("-ofile").
// "--" ends option parsing. Any failure is an *Error.
func Resolve(t Table, args []string) (Resolved, []string, error) {
	resolved := make(Resolved)
	positional := []string{}

	set := func(s Spec, v Value) error {
		key := s.Key()
		if resolved.Has(key) {
			return duplicateFlag(key)
		}
		resolved[key] = v
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			return resolved, positional, nil

		case strings.HasPrefix(arg, "--"):
			name, attached, hasAttached := strings.Cut(arg, "=")
			spec, err := t.matchLong(name)
			if err != nil {
				return nil, nil, err
			}

			var v Value
			if spec.TakesArg {
				val := attached
				if !hasAttached {
					if i+1 >= len(args) {
						return nil, nil, missingArgument(spec.Long)
					}
					i++
					val = args[i]
				}
				if val == "" {
					return nil, nil, missingArgument(spec.Long)
				}
				v = Value{Arg: val, HasArg: true}
			} else if hasAttached {
				return nil, nil, unexpectedArgument(spec.Long)
			}

			if err := set(spec, v); err != nil {
				return nil, nil, err
			}

		case len(arg) > 1 && arg[0] == '-':
			for j := 1; j < len(arg); j++ {
				flag := "-" + arg[j:j+1]
				spec, ok := t.lookupShort(flag)
				if !ok {
					return nil, nil, unknownFlag(flag)
				}

				if !spec.TakesArg {
					if err := set(spec, Value{}); err != nil {
						return nil, nil, err
					}
					continue
				}

				val := arg[j+1:]
				if val == "" {
					if i+1 >= len(args) {
						return nil, nil, missingArgument(flag)
					}
					i++
					val = args[i]
				}
				if val == "" {
					return nil, nil, missingArgument(flag)
				}
				if err := set(spec, Value{Arg: val, HasArg: true}); err != nil {
					return nil, nil, err
				}
				break
			}

		default:
			positional = append(positional, arg)
		}
	}

	return resolved, positional, nil
}
