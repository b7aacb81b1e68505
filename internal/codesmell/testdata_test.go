package codesmell

func testRecord(priority, path string) Record {
	return Record{
		"type":       priority,
		"module":     "smelly.app",
		"obj":        "App.run",
		"line":       12,
		"column":     4,
		"endLine":    14,
		"path":       path,
		"symbol":     "unused-variable",
		"message":    "Unused variable 'x'",
		"message-id": "W0612",
	}
}
