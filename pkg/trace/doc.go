// Package trace 在无窗口环境下运行完整的界面编排流程，并记录每一次可观察的状态变化。
//
// 流程：加载信号 → 页面就绪遮罩 → 开场序列 → 着陆页（脚本化滚动到底部再平滑回到顶部）。
// 所有组件共用一个虚拟时钟，时间戳精确可复现；结束时释放全部组件并报告残留的定时器与帧请求。
package trace
