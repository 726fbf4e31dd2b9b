package post

// Policy selects, per command, whether a command that would not change state
// is skipped (idempotent) or still recorded as an event.
type Policy struct {
	// IdempotentPublish skips Publish when title, content and category all match.
	IdempotentPublish bool
	// IdempotentTag skips AddTag for a tag that is already present.
	IdempotentTag bool
	// IdempotentUntag skips RemoveTag for a tag that is absent.
	IdempotentUntag bool
}

// DefaultPolicy guards every command.
func DefaultPolicy() Policy {
	return Policy{
		IdempotentPublish: true,
		IdempotentTag:     true,
		IdempotentUntag:   true,
	}
}

// UnguardedPolicy records an event for every accepted command. It reproduces
// event logs written by writers that never skipped repeated commands.
func UnguardedPolicy() Policy {
	return Policy{}
}
