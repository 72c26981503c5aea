package models

import (
	"encoding/json"
	"testing"
)

func TestRoomOptionPriceDecoding(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want RoomOption
	}{
		{
			name: "numeric prices",
			in:   `{"name":"Quad","capacity":4,"price":30000000,"original_price":35000000}`,
			want: RoomOption{Name: "Quad", Capacity: 4, Price: 30000000, OriginalPrice: 35000000},
		},
		{
			name: "rupiah text from the form",
			in:   `{"name":"Double","capacity":2,"price":"Rp 40.000.000"}`,
			want: RoomOption{Name: "Double", Capacity: 2, Price: 40000000},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got RoomOption
			if err := json.Unmarshal([]byte(c.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}

	var opt RoomOption
	if err := json.Unmarshal([]byte(`{"name":"Triple","price":"murah"}`), &opt); err == nil {
		t.Fatal("expected error for non-numeric price text")
	}
}
