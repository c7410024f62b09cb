package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tugas configuration file
# Values can be overridden by TUGAS_* environment variables or CLI flags.
# Place it at ~/.tugas/tugas.toml or ./tugas.toml.

# Task file (supports ~ and $VAR expansion; relative paths use the working directory)
todo_file = "~/.tugas/todos.json"

# Optional JSON Schema used by --doctor (default: built-in schema)
# schema_file = "todos.schema.json"

# Category assigned when a task is added without one
default_category = "Umum"

# Suggestions offered by the interactive category chooser
categories = [
  "Tugas Sekolah",
  "Pekerjaan Rumah",
  "Acara Keluarga",
  "Agenda Organisasi",
  "Ulang Tahun",
  "Pertemuan OSIS",
  "Jadwal Olahraga",
  "Hari Penting Lainnya",
  "Nongkrong",
  "Main Bola",
]

# Logging (written to stderr)
log_level = "warn"        # debug, info, warn, error
log_format = "text"       # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
