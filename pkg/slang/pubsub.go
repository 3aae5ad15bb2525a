package slang

import "sync"

// PubSubRegistry maps a tag name to the ordered list of functions subscribed
// to it, and drives the fan-out dispatch for a publish-chain stage.
// Subscriptions accumulate for the lifetime of the Engine; there is no
// unsubscribe operation.
type PubSubRegistry struct {
	mu   sync.Mutex
	subs map[string][]Value
}

func NewPubSubRegistry() *PubSubRegistry {
	return &PubSubRegistry{subs: map[string][]Value{}}
}

// Subscribe registers fn (a *Function or *Builtin) under tag, in
// registration order.
func (r *PubSubRegistry) Subscribe(tag string, fn Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[tag] = append(r.subs[tag], fn)
}

// Publish invokes every subscriber of tag in registration order, packing
// payload into each subscriber's parameter list, and returns the flattened
// list of results that becomes the next stage's payload.
func (r *PubSubRegistry) Publish(ev *Evaluator, tag string, payload []Value, pos Position) ([]Value, error) {
	r.mu.Lock()
	subs := append([]Value(nil), r.subs[tag]...)
	r.mu.Unlock()

	var results []Value
	for _, sub := range subs {
		args := packArgs(sub, payload)
		v, err := ev.callValue(sub, args, pos)
		if err != nil {
			return nil, err
		}
		if arr, ok := v.(*Array); ok {
			results = append(results, arr.Elems...)
		} else {
			results = append(results, v)
		}
	}
	return results, nil
}

// packArgs implements the 0/1/k-param argument-packing rule: a 0-param
// subscriber ignores the payload; a 1-param subscriber always receives one
// Array holding the payload with any Null values filtered out; a k>1-param
// subscriber receives the payload spread positionally, padded with Null.
func packArgs(sub Value, payload []Value) []Value {
	fn, ok := sub.(*Function)
	if !ok {
		return payload
	}
	switch arity := len(fn.Params); {
	case arity == 0:
		return nil
	case arity == 1:
		filtered := make([]Value, 0, len(payload))
		for _, v := range payload {
			if _, isNull := v.(Null); !isNull {
				filtered = append(filtered, v)
			}
		}
		return []Value{NewArray(filtered)}
	default:
		args := make([]Value, arity)
		for i := range args {
			if i < len(payload) {
				args[i] = payload[i]
			} else {
				args[i] = NullValue
			}
		}
		return args
	}
}
