package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxMessageSize bounds a single gRPC message. Photos travel as base64 data
// URIs, so the default 4 MiB is too small.
const MaxMessageSize = 16 << 20

// XPPerAnalysis is the experience granted for every saved analysis.
const XPPerAnalysis = 50

// HealthyDiagnosis is the label the diagnosis model returns for a plant
// without visible disease or deficiency.
const HealthyDiagnosis = "Healthy"

// NoRemedies is stored when a saved analysis carries no remedy text.
const NoRemedies = "N/A"
