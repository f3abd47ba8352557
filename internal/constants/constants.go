package constants

// Logo is the ASCII art shown by the --logo flag
const Logo = `
          _  _
   __ _  (_)| |_  ___  ____
  / _` + "`" + ` | | || __|/ __||_  /
 | (_| | | || |_| (__  / /
  \__, | |_| \__|\___|/___|
  |___/
`

// Tagline is the application's motto
const Tagline = "conventional commits, one fuzzy search away"
