package messages

func init() {
	// MT190/191/192/196 — the advice-of-charges / query / answer family.
	// All four share the same practical shape in this catalog: a reference,
	// a related reference, and optional amount, charges, free-format
	// narrative and sender-to-receiver information fields; they
	// differ in MessageType (and, in the full standard, in which narrative
	// field is mandatory) rather than in structure.
	for _, mtype := range []string{"190", "191", "192", "196"} {
		register(&Schema{
			MessageType: mtype,
			Slots: []Slot{
				m("20", Mandatory),
				m("21", Mandatory),
				m("32B", Optional),
				m("71B", Optional),
				m("79", Optional),
				m("72", Optional),
			},
		})
	}

	// MT199/MT299 — Free Format Message.
	for _, mtype := range []string{"199", "299"} {
		register(&Schema{
			MessageType: mtype,
			Slots: []Slot{
				m("20", Mandatory),
				m("21", Optional),
				m("79", Mandatory),
			},
		})
	}
}
