package config

// DefaultTemplate is the commented config document written by `ghostscrub init`.
// Its values mirror Default() exactly; config_test.go keeps the two in sync.
const DefaultTemplate = `# ghostscrub configuration
# Every field is optional. Missing fields fall back to these defaults.

# Only files with these extensions are processed. An empty list means
# no extension restriction. Extensionless files are always processed.
include_extensions:
  - rs
  - py
  - js
  - ts
  - jsx
  - tsx
  - go
  - java
  - c
  - cpp
  - h
  - hpp
  - cs
  - php
  - rb
  - swift
  - kt
  - scala
  - clj
  - hs
  - ml
  - txt
  - md
  - json
  - xml
  - yaml
  - yml
  - toml
  - ini
  - cfg
  - conf

# Extensions rejected even when listed above.
exclude_extensions: []

# Glob patterns of files in scope (informational).
include_patterns:
  - "**/*"

# Glob patterns pruned from traversal: directories matching a pattern are
# not descended into, files matching one are never touched.
exclude_patterns:
  # Version control
  - "**/.git/**"
  - "**/.svn/**"
  - "**/.hg/**"
  - "**/.bzr/**"
  # Build artifacts and dependencies
  - "**/target/**"
  - "**/node_modules/**"
  - "**/build/**"
  - "**/dist/**"
  - "**/out/**"
  - "**/bin/**"
  - "**/obj/**"
  # Python
  - "**/__pycache__/**"
  - "**/.pytest_cache/**"
  - "**/venv/**"
  - "**/.venv/**"
  - "**/*.egg-info/**"
  # IDEs and editors
  - "**/.idea/**"
  - "**/.vscode/**"
  - "**/.vs/**"
  - "**/*.swp"
  - "**/*.swo"
  - "**/*~"
  - "**/.#*"
  # OS specific
  - "**/.DS_Store"
  - "**/Thumbs.db"
  - "**/desktop.ini"
  # Temporary files
  - "**/*.tmp"
  - "**/*.temp"
  - "**/*.bak"
  - "**/*.orig"
  # Logs
  - "**/*.log"
  - "**/logs/**"

# Which character classes get scrubbed.
target_characters:
  zero_width_spaces: true    # U+200B, U+200C, U+200D, U+FEFF (deleted)
  non_breaking_spaces: true  # U+00A0 (replaced with a regular space)
  control_characters: true   # <= 0x1F and 0x7F, except \n \r \t
  unicode_whitespace: true   # Unicode whitespace, except space \n \r \t
  trailing_whitespace: true  # right-trim every line
  custom_chars: []           # extra code points as hex, e.g. "U+2028"

# One of: silent, normal, verbose
verbosity: normal
`
