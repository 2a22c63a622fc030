package utils

import "encoding/json"

// Optional membedakan field patch yang tidak dikirim (Set=false, tidak
// disentuh) dari field yang dikirim null secara eksplisit (Set=true,
// Value=nil, mengosongkan field).
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
