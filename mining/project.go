// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// project.go: the in-place projection primitive.
//
// Contract:
//   • After Project returns b, every element of refs[:b] satisfied keep.
//   • Elements of refs[b:] are in unspecified order; some may never have been
//     passed to keep.
//   • keep is called at most once per element.
//   • When b < minSupport the scan may have stopped early; the caller must
//     treat the branch as infrequent.
//
// Complexity:
//   • Time:  O(len(refs)) calls to keep in the worst case, fewer when the
//     support bound collapses.
//   • Space: O(1); elements are swapped in place.

package mining

// Project partitions refs so that elements satisfying keep come first and
// returns the boundary. It maintains an upper bound on the achievable
// support (len(refs) minus rejections so far) and returns immediately,
// without classifying the rest, once that bound drops below minSupport.
func Project[E any](refs []E, keep func(E) bool, minSupport int) int {
	first, last := 0, len(refs)
	bound := len(refs)

	// 1. Nothing in range can reach the threshold.
	if bound < minSupport {
		return 0
	}

	for first != last {
		// 2. Advance over accepted elements at the head.
		for keep(refs[first]) {
			first++
			if first == last {
				return first
			}
		}

		// 3. refs[first] was rejected.
		bound--
		if bound < minSupport {
			return first
		}
		last--
		if first == last {
			return first
		}

		// 4. Walk the tail backwards looking for an accepted element.
		for !keep(refs[last]) {
			bound--
			if bound < minSupport {
				return first
			}
			last--
			if first == last {
				return first
			}
		}

		// 5. Exchange the accepted tail element with the rejected head one.
		refs[first], refs[last] = refs[last], refs[first]
		first++
	}

	return first
}
