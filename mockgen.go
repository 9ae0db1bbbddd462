//go:build gen

package connwatch

//go:generate sh -c "go run go.uber.org/mock/mockgen -package connwatch -self_package github.com/quic-kit/connwatch -destination mock_datagram_sender_test.go github.com/quic-kit/connwatch DatagramSender"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package connwatch -self_package github.com/quic-kit/connwatch -destination mock_datagram_queue_observer_test.go github.com/quic-kit/connwatch DatagramQueueObserver"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package connwatch -self_package github.com/quic-kit/connwatch -destination mock_idle_network_detector_delegate_test.go github.com/quic-kit/connwatch IdleNetworkDetectorDelegate"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package connwatch -self_package github.com/quic-kit/connwatch -destination mock_network_blackhole_detector_delegate_test.go github.com/quic-kit/connwatch NetworkBlackholeDetectorDelegate"
