// Package anomaly classifies a dependency-graph cycle into the Adya/Cerone
// taxonomy (G0, G1a, G1b, G1c, G-single, G2, or a realtime violation),
// detects the two anomalies that need no cycle search (G1a aborted reads,
// G1b intermediate reads) plus within-transaction internal-consistency
// violations, and renders pure-text witness explanations.
//
// Grounded on the teacher's builder/errors.go "priority" comment block
// style (an ordered sentinel list with documented tie-break rules),
// generalized here to the anomaly subsumption order (G2 subsumes
// G-single/G1c, G1 subsumes G1a/G1b/G1c, G1c subsumes G0).
package anomaly
