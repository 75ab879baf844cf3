package prompt

// partOverhead approximates the structural cost of one history entry
// (role tag plus formatting) when accounting against the character budget.
const partOverhead = 10
