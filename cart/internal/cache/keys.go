package cache

const KeyCartByUserId = "carts:user:%s"
