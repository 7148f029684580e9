package logger

const WelcomeMsg = "Welcome to pong! session: %s"
const SettingsMsg = "場地 %vx%v, 每秒 %d 幀"

const RightPlayerPointMsg = "Right Player Point!!! 比分 %d:%d"
const LeftPlayerPointMsg = "Left Player Point!!! 比分 %d:%d"
const PaddleHitMsg = "%s 球拍擊中球, 速度 (%.1f, %.1f)"
const PaddleOvershootMsg = "%s 球拍超出邊界 y=%.1f"

const ResizeMsg = "視窗大小改變 %vx%v"
const LongFrameMsg = "幀間隔過長 %.3fs, 球可能穿過球拍"

const QuitMsg = "玩家離開遊戲, 最終比分 %d:%d"

const InvalidGeometryMsg = "無法建立球的網格: %v"
const ScreenInitMsg = "無法初始化畫面: %v"
