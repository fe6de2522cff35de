package command

// HelpText is the markdown shown for the help command.
const HelpText = `# Commands

| Command | Effect |
|---|---|
| ` + "`view`" + ` | list the remaining candidate passwords |
| ` + "`recommend`" + ` | suggest the most informative password to try next |
| ` + "`rank`" + ` | list every candidate with its score, best first |
| ` + "`guess <password> <n>`" + ` | report that the terminal said ` + "`n`" + ` characters were correct |
| ` + "`add <password>`" + ` | add a candidate password |
| ` + "`remove <password>`" + ` | drop a candidate password |
| ` + "`answer`" + ` | show the password if it has been deduced |
| ` + "`help`" + ` | show this message |
| ` + "`exit`" + ` | leave the session |

Guesses must be taken from the candidate list. A lower score means the guess
is expected to leave fewer candidates.
`
