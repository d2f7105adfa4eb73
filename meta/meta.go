// meta/meta.go
package meta

// MAX_TURNS caps the number of moves in one engine run.
const MAX_TURNS = 300

// MAX_ATTEMPTS is how many times an agent may propose a rejected move in a row.
const MAX_ATTEMPTS = 3

// GAMES is the number of games per experiment match-up.
const GAMES = 10

const OUTPUT_DIR = "output"

const LOG_LEVEL = "info"
