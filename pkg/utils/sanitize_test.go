package utils

import "testing"

func TestStripCodeFences(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"json fence":         {in: "```json\n[{\"question\":\"q\"}]\n```", want: `[{"question":"q"}]`},
		"bare fence":         {in: "```\n{}\n```", want: "{}"},
		"surrounding space":  {in: "  \n```JSON\n{\"a\":1}\n```\n ", want: `{"a":1}`},
		"crlf":               {in: "```json\r\n{}\r\n```", want: "{}"},
		"leading only":       {in: "```json\n{}", want: "{}"},
		"trailing only":      {in: "{}\n```", want: "{}"},
		"nested":             {in: "```json\n```json\n[]\n```\n```", want: "[]"},
		"no fence":           {in: `{"a":1}`, want: `{"a":1}`},
		"no fence with pad":  {in: "  [1, 2]\n", want: "  [1, 2]\n"},
		"inline backticks":   {in: "use ```go``` here", want: "use ```go``` here"},
		"fence without body": {in: "```", want: "```"},
		"empty":              {in: "", want: ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := StripCodeFences(tc.in); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestStripCodeFencesIsIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n[1]\n```",
		"```\n```\n{}",
		"```json\n```",
		"```python\nprint(1)\n```\n\n```",
		"plain text",
		"  padded  ",
		"\n```\n\n```\n",
		"```a\n```b\n```c\nx\n```\n```",
	}
	for _, in := range inputs {
		once := StripCodeFences(in)
		if twice := StripCodeFences(once); twice != once {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestExtractNumber(t *testing.T) {
	cases := map[string]struct {
		in   string
		want float64
		ok   bool
	}{
		"sentence":     {in: "I think about 82.5% based on the answers", want: 82.5, ok: true},
		"integer":      {in: "75", want: 75, ok: true},
		"first wins":   {in: "Between 60 and 70.5", want: 60, ok: true},
		"trailing dot": {in: "90.", want: 90, ok: true},
		"no digits":    {in: "I cannot predict that.", ok: false},
		"empty":        {in: "", ok: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ExtractNumber(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok: got=%v want=%v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("value: got=%v want=%v", got, tc.want)
			}
		})
	}
}
