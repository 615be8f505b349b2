package template

// MergeContexts merges contexts into a new one. Keys of later contexts
// override earlier ones; nil contexts are ignored.
func MergeContexts(contexts ...map[string]interface{}) map[string]interface{} {
	size := 0
	for _, ctx := range contexts {
		size += len(ctx)
	}

	result := make(map[string]interface{}, size)
	for _, ctx := range contexts {
		for key, value := range ctx {
			result[key] = value
		}
	}
	return result
}

// FromStrings converts user supplied string variables into a context.
func FromStrings(vars map[string]string) map[string]interface{} {
	ctx := make(map[string]interface{}, len(vars))
	for key, value := range vars {
		ctx[key] = value
	}
	return ctx
}
