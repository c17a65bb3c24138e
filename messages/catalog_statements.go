package messages

func init() {
	// MT920 — Request Message: asks for a statement/balance report; modeled
	// here with the header fields common to every variant (the per-message
	// request-type sub-fields 12/34F are a pure request-envelope detail
	// outside the field catalog's ~60-tag surface and are left as
	// unknown-tag warnings rather than modeled slots).
	register(&Schema{
		MessageType: "920",
		Slots: []Slot{
			m("20", Mandatory),
			m("25", Mandatory),
			m("28", Optional),
		},
	})

	// MT940 — Customer Statement Message: header + opening balance, a
	// repeating sequence of statement lines (61, each optionally followed
	// by an 86 narrative), closing balance, then optional available-balance
	// and information fields.
	register(&Schema{
		MessageType: "940",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Optional),
			m("25", Mandatory),
			m("28", Mandatory),
			m("60F", Mandatory),

			seq("61", Repetitive, "LINES"),
			seq("86", Optional, "LINES"),

			m("62F", Mandatory),
			m("64", Optional),
			m("65", Optional),
			m("86", Optional),
		},
		Sequences: []Sequence{
			{ID: "LINES", FirstTag: "61", Min: 0, Max: 0},
		},
	})

	// MT941 — Balance Report.
	register(&Schema{
		MessageType: "941",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Optional),
			m("25", Mandatory),
			m("28", Mandatory),
			m("60F", Mandatory),
			m("93B", Optional),
			m("62F", Mandatory),
			m("64", Optional),
			m("65", Optional),
		},
	})

	// MT942 — Interim Transaction Report: like MT940 but without closing
	// balance (62F is replaced by the lighter-weight interim summary).
	register(&Schema{
		MessageType: "942",
		Slots: []Slot{
			m("20", Mandatory),
			m("21", Optional),
			m("25", Mandatory),
			m("28", Mandatory),

			seq("61", Repetitive, "LINES"),
			seq("86", Optional, "LINES"),

			m("93B", Optional),
			m("86", Optional),
		},
		Sequences: []Sequence{
			{ID: "LINES", FirstTag: "61", Min: 0, Max: 0},
		},
	})

	// MT950 — Statement Message (the interbank equivalent of MT940).
	register(&Schema{
		MessageType: "950",
		Slots: []Slot{
			m("20", Mandatory),
			m("25", Mandatory),
			m("28", Mandatory),
			m("60F", Mandatory),

			seq("61", Repetitive, "LINES"),
			seq("86", Optional, "LINES"),

			m("62F", Mandatory),
			m("64", Optional),
		},
		Sequences: []Sequence{
			{ID: "LINES", FirstTag: "61", Min: 0, Max: 0},
		},
	})
}
