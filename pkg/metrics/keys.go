package metrics

// Floatmap metric keys
const (
	KEY_TRIAL_LATENCY = "floatmap_trial_latency"
	KEY_THROUGHPUT    = "floatmap_throughput"

	KEY_TABLE_SIZE = "floatmap_table_size"
	KEY_CAPACITY   = "floatmap_capacity"
	KEY_MAX_CHAIN  = "floatmap_max_chain_length"
	KEY_MEAN_CHAIN = "floatmap_mean_chain_length"

	KEY_KEYGEN_LATENCY = "floatmap_keygen_latency"
)

// Floatmap tag keys
const (
	TAG_DISTRIBUTION = "distribution"
	TAG_WORKLOAD     = "workload"
	TAG_IMPL         = "impl"
	TAG_MIXER        = "mixer"
)

// BenchTags builds the tag set shared by every benchmark metric.
func BenchTags(distribution, workload, impl, mixer string) []string {
	return BuildTag(
		NewTag(TAG_DISTRIBUTION, distribution),
		NewTag(TAG_WORKLOAD, workload),
		NewTag(TAG_IMPL, impl),
		NewTag(TAG_MIXER, mixer),
	)
}
